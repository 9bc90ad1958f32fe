package main

import (
	"context"
	"fmt"

	"quirknotes/internal/services/notes"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"
)

var (
	count     int
	fakerSeed int64
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Insert fake notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if count <= 0 {
			return fmt.Errorf("count must be positive, got %d", count)
		}
		return withRepo(cmd.Context(), func(repo notes.Repository) error {
			n, err := seedNotes(cmd.Context(), repo, gofakeit.New(fakerSeed), count)
			log.Info("notes seeded", "count", n)
			return err
		})
	},
}

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete every note",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(cmd.Context(), func(repo notes.Repository) error {
			n, err := repo.DeleteAll(cmd.Context())
			if err != nil {
				return err
			}
			log.Info("notes wiped", "count", n)
			return nil
		})
	},
}

func init() {
	notesCmd.Flags().IntVarP(&count, "count", "n", 100, "How many notes to create")
	notesCmd.Flags().Int64Var(&fakerSeed, "faker-seed", 0, "Seed for generated text; 0 picks a random one")

	rootCmd.AddCommand(notesCmd, wipeCmd)
}

// seedNotes inserts n generated notes; roughly every third one gets a color.
// It returns how many were stored before the first error.
func seedNotes(ctx context.Context, repo notes.Repository, faker *gofakeit.Faker, n int) (int, error) {
	for i := range n {
		note := &notes.Note{
			Title:   faker.Sentence(faker.Number(2, 6)),
			Content: faker.Paragraph(1, faker.Number(1, 4), faker.Number(5, 15), " "),
		}

		id, err := repo.Insert(ctx, note)
		if err != nil {
			return i, fmt.Errorf("insert note %d: %w", i, err)
		}

		if i%3 == 0 {
			if _, err := repo.UpdateFieldsByID(ctx, id, notes.Fields{notes.FieldColor: faker.HexColor()}); err != nil {
				return i + 1, fmt.Errorf("color note %d: %w", i, err)
			}
		}
	}
	return n, nil
}

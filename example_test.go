package jot_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/jot"
)

// Example_basic creates a note, reads it back and searches for it.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "jot-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := jot.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	n, err := svc.CreateNote(ctx, "My Note", []string{"Hello world"})
	if err != nil {
		log.Fatal(err)
	}

	got, err := svc.GetNote(ctx, n.ID)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d %s %q\n", got.ID, got.Filename, got.Body)

	matches, err := svc.SearchNotes(ctx, "HELLO")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(matches), matches[0].Title)
	// Output:
	// 1 1_My_Note.txt ["Hello world"]
	// 1 My Note
}

package constants_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/citylib/pkg/constants"
)

// Example demonstrates using constants for the catalog files
func Example() {
	dir, err := os.MkdirTemp("", "citylib")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	books := filepath.Join(dir, constants.BooksFile)
	if err := os.WriteFile(books, nil, constants.FilePermissions); err != nil {
		panic(err)
	}

	fmt.Println(filepath.Base(books))
	fmt.Printf("Created file with %o permissions\n", constants.FilePermissions)
	// Output:
	// books.txt
	// Created file with 644 permissions
}

// Example_ids demonstrates the id seeds of an empty catalog
func Example_ids() {
	fmt.Println(constants.FirstBookID, constants.FirstMemberID)
	// Output: 101 201
}

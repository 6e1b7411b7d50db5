package rotate_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	rotate "github.com/kei2100/rotatelog"
)

func ExampleWriter() {
	dir, err := os.MkdirTemp("", "rotate-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	const bytes3 uint64 = 3
	w, err := rotate.NewWriter(filepath.Join(dir, "test.log"), rotate.WithMaxSize(bytes3))
	if err != nil {
		panic(err)
	}
	defer w.Close()

	fmt.Fprint(w, "12")
	fmt.Fprint(w, "34")
	fmt.Fprint(w, "5") // 4 bytes is over 3, rotate before writing

	b0, _ := os.ReadFile(filepath.Join(dir, "test.log"))
	b1, _ := os.ReadFile(filepath.Join(dir, "test.1.log"))
	fmt.Printf("%s/%s", b0, b1)

	// Output: 5/1234
}

func ExampleWriter_ReadFrom() {
	fs := afero.NewMemMapFs()
	w, err := rotate.NewWriter("/var/log/app.log",
		rotate.WithFs(fs),
		rotate.WithMaxSize(4),
		rotate.WithMaxRotations(2),
		rotate.WithChunkSize(5),
	)
	if err != nil {
		panic(err)
	}
	defer w.Close()

	if _, err := w.ReadFrom(strings.NewReader("aaaaabbbbbcccccdd")); err != nil {
		panic(err)
	}

	for _, name := range []string{"/var/log/app.log", "/var/log/app.1.log", "/var/log/app.2.log"} {
		b, _ := afero.ReadFile(fs, name)
		fmt.Printf("%s: %s\n", name, b)
	}

	// Output:
	// /var/log/app.log: dd
	// /var/log/app.1.log: ccccc
	// /var/log/app.2.log: bbbbb
}

func ExampleBackupPath() {
	fmt.Println(rotate.BackupPath("/var/log/app.log", 1))
	fmt.Println(rotate.BackupPath("/var/log/app", 3))

	// Output:
	// /var/log/app.1.log
	// /var/log/app.3
}

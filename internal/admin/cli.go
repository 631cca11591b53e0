// Package admin implements the employeedb operator commands. They work on
// the configured store directly, bypassing the HTTP API.
package admin

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
	"github.com/employeedir/employeedir/backend/go-services/internal/employee/store"
)

type commands struct {
	Init   struct{} `cmd:"" help:"Seed the directory with sample employees if it does not exist yet."`
	List   struct{} `cmd:"" help:"Print all employees as a table."`
	Export struct {
		Out string `short:"o" help:"Write the document to this file instead of stdout."`
	} `cmd:"" help:"Print the whole document as JSON."`
	Import struct {
		File string `arg:"" type:"existingfile" help:"JSON document to load."`
	} `cmd:"" help:"Replace the whole document with the contents of a JSON file."`
}

// Config holds the IO endpoints for Run so tests can capture output.
type Config struct {
	Stdout io.Writer
	Stderr io.Writer
	Exit   func(int)
}

// DefaultConfig writes to the process streams.
func DefaultConfig() *Config {
	return &Config{Stdout: os.Stdout, Stderr: os.Stderr, Exit: os.Exit}
}

// Run parses args and executes the selected command against st.
func Run(ctx context.Context, args []string, st store.Store, config *Config) error {
	var cli commands
	parser, err := kong.New(&cli,
		kong.Name("employeedb"),
		kong.Description("Administer the employee directory document."),
		kong.Exit(config.Exit),
		kong.Writers(config.Stdout, config.Stderr),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	switch kctx.Command() {
	case "init":
		if err := st.InitializeIfAbsent(ctx, employee.Seed()); err != nil {
			return err
		}
		fmt.Fprintln(config.Stdout, "directory initialized")
		return nil
	case "list":
		return list(ctx, st, config.Stdout)
	case "export":
		return export(ctx, st, cli.Export.Out, config.Stdout)
	case "import <file>":
		n, err := importFile(ctx, st, cli.Import.File)
		if err != nil {
			return err
		}
		fmt.Fprintf(config.Stdout, "imported %d employees\n", n)
		return nil
	}
	return fmt.Errorf("unknown command %q", kctx.Command())
}

func list(ctx context.Context, st store.Store, w io.Writer) error {
	doc, err := st.Load(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPOSITION\tDEPARTMENT\tEMAIL\tPHONE")
	for _, e := range doc.Employees {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Position, e.Department, e.Email, e.Phone)
	}
	return tw.Flush()
}

func export(ctx context.Context, st store.Store, out string, w io.Writer) error {
	doc, err := st.Load(ctx)
	if err != nil {
		return err
	}
	data, err := store.Encode(doc)
	if err != nil {
		return err
	}
	if out != "" {
		return os.WriteFile(out, append(data, '\n'), 0o644)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func importFile(ctx context.Context, st store.Store, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	doc, err := store.Decode(data)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	err = store.WithLock(ctx, st, func() error {
		return st.Save(ctx, doc)
	})
	if err != nil {
		return 0, err
	}
	return len(doc.Employees), nil
}

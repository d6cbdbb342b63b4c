package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/encode"
	"github.com/mondoc/go-mondoc/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string) (*doc.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d)
}

// getish resolves an argument that is either a literal document (-s), a file
// path (-f), or, with neither flag, a literal document.
func getish(s, f bool, cc *cli.Context, arg string) (*doc.Node, error) {
	if s && f {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if f {
		return getObjFile(cc, arg)
	}
	return parse.Parse([]byte(arg))
}

// readDocs reads a file ("-" for the command input) and splits it into
// documents on "---" separator lines.
func readDocs(cc *cli.Context, file string) ([]*doc.Node, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	var res []*doc.Node
	for i, d := range bytes.Split(in, []byte("\n---\n")) {
		y, err := parse.Parse(d)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res = append(res, y)
	}
	return res, nil
}

func writeDocs(cfg *MainConfig, cc *cli.Context, docs []*doc.Node) error {
	for i, y := range docs {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "\n---\n"); err != nil {
				return err
			}
		}
		if err := encodeOut(cfg, cc, y); err != nil {
			return err
		}
	}
	if len(docs) > 0 {
		_, err := io.WriteString(cc.Out, "\n")
		return err
	}
	return nil
}

func encodeOut(cfg *MainConfig, cc *cli.Context, y *doc.Node) error {
	if err := encode.Encode(y, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/gogpu/sdftext/font"
)

type fontsCmd struct {
	Dir   string `arg:"" type:"existingdir" help:"Directory to scan for .ttf and .otf files"`
	Match string `short:"m" help:"Show only the best match for this name"`
}

func (c *fontsCmd) Run() error {
	reg := font.NewRegistry()
	n, err := reg.ScanDir(c.Dir)
	if err != nil {
		return err
	}

	if c.Match != "" {
		e, err := reg.Lookup(c.Match)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", e.Name, e.Path)
		return nil
	}

	for _, name := range reg.Names() {
		e, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", e.Name, e.Path)
	}
	fmt.Printf("%d fonts\n", n)
	return nil
}

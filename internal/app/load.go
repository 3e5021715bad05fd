package app

import (
	"fmt"
	"os"

	"lifeline/internal/field"
	"lifeline/pkg/sims/life"
)

// LoadFile parses the board file at path into a Grid.
func LoadFile(path string) (*life.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fd, err := field.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	g, err := fd.Grid()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// LoadGrid builds the starting board: the file named by In when set,
// otherwise a random Width*Height board from Seed.
func (c *Config) LoadGrid() (*life.Grid, error) {
	var (
		g   *life.Grid
		err error
	)
	if c.In != "" {
		g, err = LoadFile(c.In)
	} else {
		g, err = life.NewRandom(c.Width, c.Height, c.Seed)
	}
	if err != nil {
		return nil, err
	}
	g.SetWorkers(c.Workers)
	return g, nil
}

package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/thorupsssp/core"
)

// ErrNotShortestPathsProblem is returned when a problem line does not
// declare a shortest-paths problem ("sp").
var ErrNotShortestPathsProblem = errors.New("dimacs: problem line does not describe a shortest paths problem")

// Options controls how Parse reports on what it is doing.
type Options struct {
	// Verbose logs comment lines, problem-line summaries and skipped
	// mirrored arcs at debug level.
	Verbose bool
}

// Parse reads a graph in DIMACS shortest-paths challenge format from r.
func Parse(r io.Reader, opts Options) (*core.Graph, error) {
	scanner := bufio.NewScanner(r)

	var g *core.Graph
	var numVertices int
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		switch line[0] {
		case 'c':
			if opts.Verbose && len(line) > 2 {
				log.Debug(line[2:])
			}

		case 'p':
			n, err := parseProblemLine(line[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "dimacs: line %d", lineNo)
			}
			numVertices = n

			if opts.Verbose {
				log.WithField("vertices", numVertices).Debug("dimacs: found shortest paths problem")
			}

		case 'a':
			if g == nil {
				var err error
				g, err = core.NewGraph(numVertices)
				if err != nil {
					return nil, errors.Wrapf(err, "dimacs: line %d", lineNo)
				}
			}

			u, v, w, err := parseArcLine(line[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "dimacs: line %d", lineNo)
			}

			if err := g.AddEdge(u, v, w); err != nil {
				if err == core.ErrParallelEdge {
					if opts.Verbose {
						log.WithFields(log.Fields{"from": u, "to": v}).Debug("dimacs: skipping mirrored arc")
					}
					continue
				}
				return nil, errors.Wrapf(err, "dimacs: line %d", lineNo)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "dimacs: reading input")
	}

	if g == nil {
		graph, err := core.NewGraph(numVertices)
		if err != nil {
			return nil, errors.Wrap(err, "dimacs: building graph with no arcs")
		}
		return graph, nil
	}

	return g, nil
}

func parseProblemLine(s string) (int, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return 0, errors.New("dimacs: malformed problem line")
	}
	if fields[0] != "sp" {
		return 0, ErrNotShortestPathsProblem
	}

	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, errors.Wrap(err, "dimacs: parsing vertex count")
	}

	return n, nil
}

func parseArcLine(s string) (u, v int, w int64, err error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return 0, 0, 0, errors.New("dimacs: malformed arc line")
	}

	uu, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "dimacs: parsing source vertex")
	}
	vv, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "dimacs: parsing target vertex")
	}
	ww, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "dimacs: parsing edge weight")
	}

	return uu - 1, vv - 1, ww, nil
}

// Write serializes g to w in DIMACS shortest-paths challenge format,
// emitting a problem line followed by two mirrored 1-indexed arc lines
// per undirected edge of g, the same encoding Parse expects as input.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "p sp %d %d\n", g.NumVertices(), g.NumEdges()); err != nil {
		return errors.Wrap(err, "dimacs: writing problem line")
	}

	for u := 0; u < g.NumVertices(); u++ {
		for _, e := range g.Neighbors(u) {
			if _, err := fmt.Fprintf(bw, "a %d %d %d\n", u+1, e.To+1, e.Weight); err != nil {
				return errors.Wrap(err, "dimacs: writing arc line")
			}
		}
	}

	return errors.Wrap(bw.Flush(), "dimacs: flushing output")
}

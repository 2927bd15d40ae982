package dimacs

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRead_ValidInstance(t *testing.T) {
	input := `c a comment line
p edge 4 4
e 1 2
e 2 3
e 3 4
e 4 1
`
	g, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 4, g.N())
	require.True(t, g.AreAdjacent(0, 1))
	require.True(t, g.AreAdjacent(3, 0))
	require.False(t, g.AreAdjacent(0, 2))
}

func TestRead_ColFormatAccepted(t *testing.T) {
	g, err := Read(strings.NewReader("p col 3 1\ne 1 2\n"))
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
}

func TestRead_SelfLoopIgnored(t *testing.T) {
	g, err := Read(strings.NewReader("p edge 2 1\ne 1 1\n"))
	require.NoError(t, err)
	require.Equal(t, 0, g.Degree(0))
}

func TestRead_DuplicateEdgePermitted(t *testing.T) {
	g, err := Read(strings.NewReader("p edge 2 2\ne 1 2\ne 1 2\n"))
	require.NoError(t, err)
	require.Equal(t, 1, g.Degree(0))
}

func TestRead_MissingProblemLine(t *testing.T) {
	_, err := Read(strings.NewReader("e 1 2\n"))
	require.True(t, errors.Is(err, ErrMissingProblemLine))
}

func TestRead_VertexOutOfRange(t *testing.T) {
	_, err := Read(strings.NewReader("p edge 2 1\ne 1 5\n"))
	require.True(t, errors.Is(err, ErrVertexOutOfRange))
}

func TestRead_MalformedEdgeLine(t *testing.T) {
	_, err := Read(strings.NewReader("p edge 2 1\ne 1\n"))
	require.True(t, errors.Is(err, ErrMalformedLine))
}

func TestRead_UnrecognizedLineType(t *testing.T) {
	_, err := Read(strings.NewReader("p edge 2 1\nx 1 2\n"))
	require.True(t, errors.Is(err, ErrMalformedLine))
}

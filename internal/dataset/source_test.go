package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathdash/internal/course"
)

type failingSource struct{}

func (failingSource) Load(context.Context) (*course.Dataset, error) { return nil, errors.New("disk gone") }
func (failingSource) Describe() string                              { return "failing" }

func TestChain_FirstNonNilWins(t *testing.T) {
	custom := &course.Dataset{Courses: []course.SkillRecord{{Name: "Go", TotalCourses: 1}}}
	chain := Chain{
		Static{Name: "empty"},
		Static{Dataset: custom, Name: "custom"},
		Builtin(),
	}

	ds, src, err := chain.Resolve(context.Background())
	require.NoError(t, err)
	assert.Same(t, custom, ds)
	assert.Equal(t, "custom", src.Describe())
}

func TestChain_FallsBackToBuiltin(t *testing.T) {
	ds, err := Chain{Static{Name: "empty"}, Builtin()}.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Courses, len(course.DefaultCourses()))
}

func TestChain_ErrorStops(t *testing.T) {
	_, src, err := Chain{failingSource{}, Builtin()}.Resolve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
	assert.Equal(t, "failing", src.Describe())
}

func TestChain_Empty(t *testing.T) {
	_, err := Chain{}.Load(context.Background())
	assert.Error(t, err)
}

func TestChain_Describe(t *testing.T) {
	chain := Chain{Static{Name: "courses.yaml"}, Static{Name: "pathdash.db"}, Builtin()}
	assert.Equal(t, "courses.yaml > pathdash.db > built-in", chain.Describe())
	assert.Equal(t, "empty", Chain{}.Describe())
}

func TestResolve_ReportsServingSource(t *testing.T) {
	ds, src, err := Resolve(context.Background(), Chain{Static{Name: "pathdash.db"}, Builtin()})
	require.NoError(t, err)
	require.NotNil(t, ds)
	assert.Equal(t, "built-in", src.Describe())

	_, src, err = Resolve(context.Background(), Builtin())
	require.NoError(t, err)
	assert.Equal(t, "built-in", src.Describe())
}

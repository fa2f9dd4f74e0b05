package filter

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"rangefilter/filter/options"
)

const (
	elevationClause = `"elevation" >= 300 AND "elevation" <= 800`
	ratioClause     = `"ratio" >= 0.00 AND "ratio" <= 0.50`
)

type recordingSink struct {
	predicates []string
	cleared    int
}

func (r *recordingSink) SetPredicate(expr string) { r.predicates = append(r.predicates, expr) }
func (r *recordingSink) ClearPredicate()          { r.cleared++ }

func (r *recordingSink) last() string {
	if len(r.predicates) == 0 {
		return ""
	}
	return r.predicates[len(r.predicates)-1]
}

type mapSettings map[string]string

func (m mapSettings) Setting(_ context.Context, key, def string) (string, error) {
	if v, ok := m[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m mapSettings) SetSetting(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func TestSet(t *testing.T) {
	s := NewSetSuite(t)
	suite.Run(t, s)
}

func NewSetSuite(t *testing.T) *SetSuite {
	return &SetSuite{
		Assertions: require.New(t),
	}
}

type SetSuite struct {
	suite.Suite
	*require.Assertions // default to require behavior
	sink                *recordingSink
	settings            mapSettings
	set                 *Set
}

func (s *SetSuite) SetupTest() {
	s.sink = &recordingSink{}
	s.settings = mapSettings{}
	opts := options.NewSetOptions().
		SetResolution(100).
		SetLogger(zaptest.NewLogger(s.T()))
	s.set = NewSet(s.sink, s.settings, opts)
}

func (s *SetSuite) addElevationAndRatio() (*Field, *Field) {
	elevation, err := s.set.AddField("elevation", 0, 1000)
	s.NoError(err)
	ratio, err := s.set.AddField("ratio", 0, 1)
	s.NoError(err)
	return elevation, ratio
}

func (s *SetSuite) TestEmptyWhenClean() {
	s.addElevationAndRatio()
	s.Equal("", s.set.Recompute())
	s.Equal("", s.sink.last())
}

func (s *SetSuite) TestAddFieldDefaults() {
	f, err := s.set.AddField("elevation", 0, 1000)
	s.NoError(err)

	start, end := f.Ticks()
	s.Equal(0, start)
	s.Equal(100, end)
	s.False(f.Dirty())
	s.Equal([]string{"elevation"}, s.set.Names())
}

func (s *SetSuite) TestAddFieldInvalidBounds() {
	cases := []struct{ Min, Max float64 }{
		{math.NaN(), 1},
		{0, math.NaN()},
		{math.Inf(-1), 0},
		{0, math.Inf(1)},
		{10, 1},
	}
	for _, tc := range cases {
		_, err := s.set.AddField("bad", tc.Min, tc.Max)
		s.ErrorIs(err, ErrInvalidBounds)
	}
	s.Equal(0, s.set.Len())
}

func (s *SetSuite) TestAddFieldDuplicate() {
	_, err := s.set.AddField("elevation", 0, 1000)
	s.NoError(err)
	_, err = s.set.AddField("elevation", 0, 10)
	s.ErrorIs(err, ErrDuplicateField)
	s.Equal(1, s.set.Len())
}

func (s *SetSuite) TestComposesInInsertionOrder() {
	elevation, ratio := s.addElevationAndRatio()

	s.NoError(ratio.SetEnd(50))
	s.Equal(ratioClause, s.sink.last())

	s.NoError(elevation.SetTicks(30, 80))
	s.Equal(elevationClause+" AND "+ratioClause, s.sink.last())
	s.Equal(s.sink.last(), s.set.Predicate())
}

func (s *SetSuite) TestRemoveField() {
	elevation, ratio := s.addElevationAndRatio()
	s.NoError(elevation.SetTicks(30, 80))
	s.NoError(ratio.SetEnd(50))

	s.set.RemoveField("elevation")
	s.Equal(ratioClause, s.sink.last())

	s.NoError(s.set.Save(context.Background()))
	s.Equal([]string{"ratio"}, Deserialize(s.settings[SettingsKey]))

	// a removed field no longer reaches the set
	pushes := len(s.sink.predicates)
	s.NoError(elevation.SetTicks(0, 10))
	s.Len(s.sink.predicates, pushes)
	_, ok := s.set.Field("elevation")
	s.False(ok)
}

func (s *SetSuite) TestRemoveAndSave() {
	elevation, _ := s.addElevationAndRatio()
	s.NoError(elevation.SetTicks(30, 80))
	s.NoError(s.set.Save(context.Background()))

	s.NoError(s.set.RemoveAndSave(context.Background(), "elevation"))
	s.Equal("", s.sink.last())
	s.Equal("ratio", s.settings[SettingsKey])

	// absent names still save the current order
	delete(s.settings, SettingsKey)
	s.NoError(s.set.RemoveAndSave(context.Background(), "missing"))
	s.Equal("ratio", s.settings[SettingsKey])

	set := NewSet(s.sink, failingSettings{errors.New("read-only")})
	_, err := set.AddField("elevation", 0, 1000)
	s.NoError(err)
	s.Error(set.RemoveAndSave(context.Background(), "elevation"))
	s.Equal(0, set.Len())
}

func (s *SetSuite) TestRemoveAbsentField() {
	s.addElevationAndRatio()
	s.set.RemoveField("missing")
	s.Equal([]string{"elevation", "ratio"}, s.set.Names())
	s.Empty(s.sink.predicates)
}

func (s *SetSuite) TestOrderSurvivesReAdd() {
	a, err := s.set.AddField("a", 0, 1000)
	s.NoError(err)
	_, err = s.set.AddField("b", 0, 1000)
	s.NoError(err)
	c, err := s.set.AddField("c", 0, 1000)
	s.NoError(err)

	s.NoError(a.SetTicks(10, 20))
	s.NoError(c.SetTicks(30, 40))
	s.set.RemoveField("b")

	b, err := s.set.AddField("b", 0, 1000)
	s.NoError(err)
	s.NoError(b.SetTicks(50, 60))

	want := strings.Join([]string{
		`"a" >= 100 AND "a" <= 200`,
		`"c" >= 300 AND "c" <= 400`,
		`"b" >= 500 AND "b" <= 600`,
	}, " AND ")
	s.Equal(want, s.set.Predicate())
	s.Equal([]string{"a", "c", "b"}, s.set.Names())
}

func (s *SetSuite) TestRemoveFromOwnChange() {
	elevation, _ := s.addElevationAndRatio()

	s.set.OnChange(func(predicate string) {
		if strings.Contains(predicate, "elevation") {
			s.set.RemoveField("elevation")
		}
	})

	s.NoError(elevation.SetTicks(30, 80))
	s.Equal([]string{elevationClause, ""}, s.sink.predicates)
	s.Equal("", s.set.Predicate())
	s.Equal([]string{"ratio"}, s.set.Names())
}

func (s *SetSuite) TestDegenerateNeverContributes() {
	constant, err := s.set.AddField("constant", 5, 5)
	s.NoError(err)
	s.False(constant.Interactive())

	s.ErrorIs(constant.SetTicks(0, 50), ErrNonInteractive)
	s.Equal("", s.set.Recompute())
}

func (s *SetSuite) TestClose() {
	elevation, _ := s.addElevationAndRatio()
	s.NoError(elevation.SetTicks(30, 80))

	s.set.Close()
	s.set.Close()
	s.Equal(1, s.sink.cleared)
	s.Equal("", s.set.Predicate())

	pushes := len(s.sink.predicates)
	s.NoError(elevation.SetTicks(0, 10))
	s.Len(s.sink.predicates, pushes)
}

func (s *SetSuite) TestSaveWithoutSettings() {
	set := NewSet(s.sink, nil)
	_, err := set.AddField("elevation", 0, 1000)
	s.NoError(err)
	s.NoError(set.Save(context.Background()))
}

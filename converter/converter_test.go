package converter_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/floorgrid/converter"
	"github.com/katalvlaran/floorgrid/geometry"
	"github.com/katalvlaran/floorgrid/occupancy"
)

// aisle is a 6×6 plan at cellSize 1: a vertical wall along lng 0 from lat 0
// to 4, and zone 42 covering lat 0..1, lng 3..4. Padding is 1, so bounds are
// [-1,5] on both axes.
//
//	y0: 0 0 0 0 0  0
//	y1: 0 1 0 0 42 42
//	y2: 0 1 0 0 42 42
//	y3: 0 1 0 0 0  0
//	y4: 0 1 0 0 0  0
//	y5: 0 1 0 0 0  0
func aisle() ([]geometry.WallSegment, []geometry.ProductZone) {
	walls := []geometry.WallSegment{{
		From: geometry.Coordinate{Lat: 0, Lng: 0},
		To:   geometry.Coordinate{Lat: 4, Lng: 0},
	}}
	zones := []geometry.ProductZone{{
		ZoneID: "42",
		Sections: [][]geometry.Coordinate{{
			{Lat: 0, Lng: 3}, {Lat: 0, Lng: 4}, {Lat: 1, Lng: 4}, {Lat: 1, Lng: 3},
		}},
	}}
	return walls, zones
}

var aisleRows = [][]int{
	{0, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 42, 42},
	{0, 1, 0, 0, 42, 42},
	{0, 1, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 0},
}

// ConverterSuite exercises construction, transforms and rasterization.
type ConverterSuite struct {
	suite.Suite
	conv *converter.Converter
}

func (s *ConverterSuite) SetupTest() {
	walls, zones := aisle()
	c, err := converter.New(walls, zones, 1)
	require.NoError(s.T(), err)
	s.conv = c
}

func TestConverterSuite(t *testing.T) {
	suite.Run(t, new(ConverterSuite))
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func (s *ConverterSuite) TestDimensionsAndBounds() {
	info := s.conv.Info()
	require.Equal(s.T(), 6, info.Width)
	require.Equal(s.T(), 6, info.Height)
	require.Equal(s.T(), 36, info.TotalCells)
	require.Equal(s.T(), 1.0, info.CellSize)
	require.Equal(s.T(), geometry.Bounds{MinLat: -1, MaxLat: 5, MinLng: -1, MaxLng: 5}, info.Bounds)
	require.Empty(s.T(), s.conv.Warnings())
}

func (s *ConverterSuite) TestCellSizeNormalisation() {
	cases := []struct {
		in, want float64
	}{
		{math.NaN(), converter.DefaultCellSize},
		{math.Inf(1), converter.DefaultCellSize},
		{0, converter.DefaultCellSize},
		{-3, converter.DefaultCellSize},
		{0.01, converter.MinCellSize},
		{2.5, 2.5},
	}
	for _, tc := range cases {
		c, err := converter.New(nil, nil, tc.in)
		require.NoError(s.T(), err, "cellSize %v", tc.in)
		require.Equal(s.T(), tc.want, c.CellSize(), "cellSize %v", tc.in)
	}
}

func (s *ConverterSuite) TestNoDataUsesDefaultBounds() {
	var got []converter.Warning
	c, err := converter.New(nil, nil, 10, converter.WithOnWarning(func(w converter.Warning) {
		got = append(got, w)
	}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), geometry.DefaultBounds, c.Bounds())
	require.Equal(s.T(), 10, c.Width())
	require.Equal(s.T(), 10, c.Height())
	require.Len(s.T(), got, 1)
	require.Equal(s.T(), converter.WarnNoData, got[0].Kind)
	require.Equal(s.T(), got, c.Warnings())
}

func (s *ConverterSuite) TestLargeSpanWarns() {
	walls := []geometry.WallSegment{{
		From: geometry.Coordinate{Lat: 0, Lng: 0},
		To:   geometry.Coordinate{Lat: 0, Lng: 1500},
	}}
	c, err := converter.New(walls, nil, 10)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 152, c.Width())
	require.Equal(s.T(), 2, c.Height())
	warnings := c.Warnings()
	require.Len(s.T(), warnings, 1)
	require.Equal(s.T(), converter.WarnLargeSpan, warnings[0].Kind)
}

func (s *ConverterSuite) TestConstructionErrors() {
	wallAt := func(v float64) []geometry.WallSegment {
		return []geometry.WallSegment{{
			From: geometry.Coordinate{Lat: v, Lng: v},
			To:   geometry.Coordinate{Lat: v, Lng: v},
		}}
	}
	cases := []struct {
		name     string
		walls    []geometry.WallSegment
		cellSize float64
		want     error
	}{
		{"PaddingOverflowsToInf", wallAt(1e308), 1e308, converter.ErrInvalidBounds},
		{"PaddingLostToPrecision", wallAt(1e300), 1, converter.ErrInvalidBounds},
		{"SpanOverflowsToInf", wallAt(0), math.MaxFloat64, converter.ErrInvalidDimensions},
		{
			"TooWide",
			[]geometry.WallSegment{{
				From: geometry.Coordinate{Lat: 0, Lng: 0},
				To:   geometry.Coordinate{Lat: 0, Lng: 200000},
			}},
			10,
			converter.ErrGridTooLarge,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			c, err := converter.New(tc.walls, nil, tc.cellSize)
			require.Nil(s.T(), c)
			require.ErrorIs(s.T(), err, tc.want)
		})
	}
}

func (s *ConverterSuite) TestInputIsCopied() {
	walls, zones := aisle()
	c, err := converter.New(walls, zones, 1)
	require.NoError(s.T(), err)
	walls[0].To.Lng = 4
	zones[0].Sections[0][0].Lat = math.NaN()

	m, err := c.GenerateGrid()
	require.NoError(s.T(), err)
	require.Equal(s.T(), aisleRows, m.Rows())
}

//----------------------------------------------------------------------------//
// Transforms
//----------------------------------------------------------------------------//

func (s *ConverterSuite) TestCoordToGrid() {
	p, err := s.conv.CoordToGrid(2, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), occupancy.Point{X: 1, Y: 3}, p)

	_, err = s.conv.CoordToGrid(math.NaN(), 0)
	require.ErrorIs(s.T(), err, converter.ErrInvalidPoint)
	_, err = s.conv.CoordToGrid(0, math.Inf(-1))
	require.ErrorIs(s.T(), err, converter.ErrInvalidPoint)
}

func (s *ConverterSuite) TestCoordToGridClampsToBorder() {
	cases := []struct {
		lat, lng float64
		want     occupancy.Point
	}{
		{100, 100, occupancy.Point{X: 5, Y: 5}},
		{-100, -100, occupancy.Point{X: 0, Y: 0}},
		{2, -50, occupancy.Point{X: 0, Y: 3}},
		{1e300, 0.5, occupancy.Point{X: 1, Y: 5}},
		{5, 5, occupancy.Point{X: 5, Y: 5}},
	}
	for _, tc := range cases {
		got, err := s.conv.CoordToGrid(tc.lat, tc.lng)
		require.NoError(s.T(), err)
		require.Equal(s.T(), tc.want, got, "(%v,%v)", tc.lat, tc.lng)
		onBorder := got.X == 0 || got.X == s.conv.Width()-1 || got.Y == 0 || got.Y == s.conv.Height()-1
		require.True(s.T(), onBorder, "(%v,%v) -> %v is not on the border", tc.lat, tc.lng, got)
	}
}

func (s *ConverterSuite) TestRoundTripWithinOneCell() {
	r := rand.New(rand.NewSource(7))
	b := s.conv.Bounds()
	size := s.conv.CellSize()
	for i := 0; i < 500; i++ {
		lat := b.MinLat + r.Float64()*b.LatSpan()
		lng := b.MinLng + r.Float64()*b.LngSpan()
		p, err := s.conv.CoordToGrid(lat, lng)
		require.NoError(s.T(), err)
		back, err := s.conv.GridToCoord(float64(p.X), float64(p.Y))
		require.NoError(s.T(), err)
		require.GreaterOrEqual(s.T(), lat-back.Lat, 0.0)
		require.Less(s.T(), lat-back.Lat, size)
		require.GreaterOrEqual(s.T(), lng-back.Lng, 0.0)
		require.Less(s.T(), lng-back.Lng, size)
	}
}

func (s *ConverterSuite) TestGridToCoordIsOriginCorner() {
	c, err := s.conv.GridToCoord(2, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), geometry.Coordinate{Lat: 2, Lng: 1}, c)
	require.Equal(s.T(), c, s.conv.CellOrigin(occupancy.Point{X: 2, Y: 3}))
	require.Equal(s.T(), geometry.Coordinate{Lat: 2.5, Lng: 1.5}, s.conv.CellCenter(occupancy.Point{X: 2, Y: 3}))

	_, err = s.conv.GridToCoord(math.NaN(), 1)
	require.ErrorIs(s.T(), err, converter.ErrInvalidPoint)
}

//----------------------------------------------------------------------------//
// Rasterization
//----------------------------------------------------------------------------//

func (s *ConverterSuite) TestGenerateGrid() {
	m, err := s.conv.GenerateGrid()
	require.NoError(s.T(), err)
	require.Equal(s.T(), aisleRows, m.Rows())
}

func (s *ConverterSuite) TestGenerateGridIdempotentAndFresh() {
	a, err := s.conv.GenerateGrid()
	require.NoError(s.T(), err)
	b, err := s.conv.GenerateGrid()
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Rows(), b.Rows())

	a.Set(0, 0, occupancy.Wall)
	c, err := s.conv.GenerateGrid()
	require.NoError(s.T(), err)
	require.Equal(s.T(), b.Rows(), c.Rows(), "mutating a returned grid must not leak into later grids")
}

func (s *ConverterSuite) TestLaterFillsOverwrite() {
	walls := []geometry.WallSegment{{
		From: geometry.Coordinate{Lat: 0, Lng: 0},
		To:   geometry.Coordinate{Lat: 0, Lng: 4},
	}}
	zones := []geometry.ProductZone{{
		ZoneID:   "7",
		Sections: [][]geometry.Coordinate{{{Lat: 0, Lng: 2}}},
	}}
	c, err := converter.New(walls, zones, 1)
	require.NoError(s.T(), err)
	m, err := c.GenerateGrid()
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][]int{
		{0, 0, 0, 0, 0, 0},
		{0, 1, 1, 7, 1, 1},
	}, m.Rows())
}

func (s *ConverterSuite) TestMalformedEntitiesAreSkipped() {
	walls, zones := aisle()
	walls = append(walls, geometry.WallSegment{
		From: geometry.Coordinate{Lat: 2, Lng: 2},
		To:   geometry.Coordinate{Lat: math.NaN(), Lng: 2},
	})
	zones = append(zones,
		geometry.ProductZone{ZoneID: "50"},
		geometry.ProductZone{ZoneID: "51", Sections: [][]geometry.Coordinate{
			{{Lat: math.NaN(), Lng: math.NaN()}},
			{},
		}},
	)

	var skips []converter.Skip
	c, err := converter.New(walls, zones, 1, converter.WithOnSkip(func(sk converter.Skip) {
		skips = append(skips, sk)
	}))
	require.NoError(s.T(), err)
	m, err := c.GenerateGrid()
	require.NoError(s.T(), err)
	require.Equal(s.T(), aisleRows, m.Rows(), "valid entities must still be drawn")

	require.Len(s.T(), skips, 4)
	require.Equal(s.T(), converter.Skip{Kind: converter.EntityWall, Index: 1, Section: -1, Err: skips[0].Err}, skips[0])
	require.Equal(s.T(), converter.EntityZone, skips[1].Kind)
	require.Equal(s.T(), 1, skips[1].Index)
	require.Equal(s.T(), -1, skips[1].Section)
	require.Equal(s.T(), 2, skips[2].Index)
	require.Equal(s.T(), 0, skips[2].Section)
	require.Equal(s.T(), 1, skips[3].Section)
	for _, sk := range skips {
		require.ErrorIs(s.T(), sk, converter.ErrMalformedGeometry)
	}
}

func (s *ConverterSuite) TestZeroConverter() {
	var c converter.Converter
	_, err := c.GenerateGrid()
	require.ErrorIs(s.T(), err, converter.ErrInvalidDimensions)
	_, err = c.CoordToGrid(1, 1)
	require.ErrorIs(s.T(), err, converter.ErrInvalidDimensions)
	m, _ := occupancy.New(1, 1)
	_, ok := c.FindNearestEmptyCell(1, 1, m)
	require.False(s.T(), ok)
}

//----------------------------------------------------------------------------//
// Nearest empty cell
//----------------------------------------------------------------------------//

func (s *ConverterSuite) TestFindNearestEmptyCell() {
	m, err := s.conv.GenerateGrid()
	require.NoError(s.T(), err)

	cases := []struct {
		name     string
		lat, lng float64
		want     converter.NearestCell
	}{
		{"AlreadyEmpty", -0.5, -0.5, converter.NearestCell{Point: occupancy.Point{X: 0, Y: 0}}},
		{"FromWall", 2, 0, converter.NearestCell{Point: occupancy.Point{X: 2, Y: 3}, Distance: 1}},
		{"FromZone", 0.5, 3.5, converter.NearestCell{Point: occupancy.Point{X: 3, Y: 1}, Distance: 1}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			got, ok := s.conv.FindNearestEmptyCell(tc.lat, tc.lng, m)
			require.True(s.T(), ok)
			require.Equal(s.T(), tc.want, got)
		})
	}
}

func (s *ConverterSuite) TestFindNearestEmptyCellNotFound() {
	m, err := s.conv.GenerateGrid()
	require.NoError(s.T(), err)

	_, ok := s.conv.FindNearestEmptyCell(math.NaN(), 0, m)
	require.False(s.T(), ok, "invalid point")
	_, ok = s.conv.FindNearestEmptyCell(0, 0, nil)
	require.False(s.T(), ok, "nil matrix")

	full := m.Clone()
	full.FillRect(0, 0, 5, 5, occupancy.Wall)
	_, ok = s.conv.FindNearestEmptyCell(0, 0, full)
	require.False(s.T(), ok, "fully blocked")

	// Only (0,0) is free; from (5,5) it is 10 steps away, beyond the cap of 6.
	full.Set(0, 0, occupancy.Walkable)
	_, ok = s.conv.FindNearestEmptyCell(4.5, 4.5, full)
	require.False(s.T(), ok, "beyond depth cap")
	got, ok := s.conv.FindNearestEmptyCell(2.5, 2.5, full)
	require.True(s.T(), ok, "exactly at depth cap")
	require.Equal(s.T(), converter.NearestCell{Point: occupancy.Point{X: 0, Y: 0}, Distance: 6}, got)
}

//----------------------------------------------------------------------------//
// Zone codes and Convert
//----------------------------------------------------------------------------//

func TestZoneCode(t *testing.T) {
	cases := []struct {
		id    string
		index int
		want  int
	}{
		{"42", 0, 42},
		{" 17 ", 3, 17},
		{"2", 0, 2},
		{"1", 4, 1003},
		{"0", 0, 999},
		{"-5", 2, 1001},
		{"abc", 1, 1000},
		{"", 0, 999},
		{"12abc", 5, 1004},
		{"99999999999999999999999", 0, 999},
	}
	for _, tc := range cases {
		if got := converter.ZoneCode(tc.id, tc.index); got != tc.want {
			t.Errorf("ZoneCode(%q, %d) = %d; want %d", tc.id, tc.index, got, tc.want)
		}
	}
}

func TestConvert_LogsSummaryAndSkips(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	walls, zones := aisle()
	walls = append(walls, geometry.WallSegment{
		From: geometry.Coordinate{Lat: math.Inf(1), Lng: 0},
		To:   geometry.Coordinate{Lat: 0, Lng: 0},
	})

	res, err := converter.Convert(walls, zones, 1, converter.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Equal(t, aisleRows, res.Grid.Rows())
	require.Equal(t, res.Converter.Info(), res.Info)

	require.Equal(t, 1, logs.FilterMessage("skipping entity during rasterization").Len())
	summary := logs.FilterMessage("grid generated").All()
	require.Len(t, summary, 1)
	require.Equal(t, int64(36), summary[0].ContextMap()["total_cells"])
}

func TestConvert_PropagatesConstructionError(t *testing.T) {
	walls := []geometry.WallSegment{{
		From: geometry.Coordinate{Lat: 0, Lng: 0},
		To:   geometry.Coordinate{Lat: 200000, Lng: 0},
	}}
	res, err := converter.Convert(walls, nil, 10)
	require.Nil(t, res)
	require.True(t, errors.Is(err, converter.ErrGridTooLarge))
}

func TestWarningKind_String(t *testing.T) {
	require.Equal(t, "no-data", converter.WarnNoData.String())
	require.Equal(t, "large-span", converter.WarnLargeSpan.String())
	require.Equal(t, "unknown", converter.WarningKind(9).String())
}

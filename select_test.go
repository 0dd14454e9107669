package rolas_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/rolas"
)

func TestConditional_SQL(t *testing.T) {
	tests := []struct {
		name string
		cond rolas.Conditional
		want string
	}{
		{
			name: "column equality",
			cond: rolas.Eq{Left: rolas.AlbumsCol("performer_id"), Right: rolas.PerformersCol("id")},
			want: "albums.performer_id = performers.id",
		},
		{
			name: "value equality",
			cond: rolas.EqVal{Column: rolas.TypesCol("nombre"), Value: "rock"},
			want: "types.nombre = 'rock'",
		},
		{
			name: "like wraps in wildcards",
			cond: rolas.Like{Column: rolas.RolasCol("titulo"), Value: "amor"},
			want: "rolas.titulo LIKE '%amor%'",
		},
		{
			name: "value embedded verbatim",
			cond: rolas.EqVal{Column: rolas.PersonsCol("real_name"), Value: "O'Brien"},
			want: "persons.real_name = 'O'Brien'",
		},
		{
			name: "empty like value",
			cond: rolas.Like{Column: rolas.RolasCol("titulo"), Value: ""},
			want: "rolas.titulo LIKE '%%'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cond.SQL())
			assert.Equal(t, tt.want, tt.cond.String())
		})
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name         string
		columns      []rolas.TableColumn
		conditionals []rolas.Conditional
		want         string
	}{
		{
			name:    "single column",
			columns: []rolas.TableColumn{rolas.PerformersCol("nombre")},
			want:    "SELECT performers.nombre FROM performers",
		},
		{
			name: "tables deduplicated in first-occurrence order",
			columns: []rolas.TableColumn{
				rolas.RolasCol("titulo"),
				rolas.AlbumsCol("nombre"),
				rolas.RolasCol("id"),
			},
			want: "SELECT rolas.titulo, albums.nombre, rolas.id FROM rolas, albums",
		},
		{
			name:    "columns are not deduplicated",
			columns: []rolas.TableColumn{rolas.RolasCol("id"), rolas.RolasCol("id")},
			want:    "SELECT rolas.id, rolas.id FROM rolas",
		},
		{
			name:         "one conditional renders where",
			columns:      []rolas.TableColumn{rolas.TypesCol("nombre")},
			conditionals: []rolas.Conditional{rolas.EqVal{Column: rolas.TypesCol("nombre"), Value: "rock"}},
			want:         "SELECT types.nombre FROM types WHERE types.nombre = 'rock'",
		},
		{
			name:    "join condition",
			columns: []rolas.TableColumn{rolas.AlbumsCol("nombre"), rolas.PerformersCol("nombre")},
			conditionals: []rolas.Conditional{
				rolas.Eq{Left: rolas.AlbumsCol("performer_id"), Right: rolas.PerformersCol("id")},
			},
			want: "SELECT albums.nombre, performers.nombre FROM albums, performers WHERE albums.performer_id = performers.id",
		},
		{
			name:    "conditionals joined with AND in order",
			columns: []rolas.TableColumn{rolas.RolasCol("titulo"), rolas.PerformersCol("nombre")},
			conditionals: []rolas.Conditional{
				rolas.Eq{Left: rolas.RolasCol("performer_id"), Right: rolas.PerformersCol("id")},
				rolas.Like{Column: rolas.RolasCol("titulo"), Value: "amor"},
				rolas.EqVal{Column: rolas.PerformersCol("nombre"), Value: "Caifanes"},
			},
			want: "SELECT rolas.titulo, performers.nombre FROM rolas, performers WHERE rolas.performer_id = performers.id AND rolas.titulo LIKE '%amor%' AND performers.nombre = 'Caifanes'",
		},
		{
			name:    "conditional tables do not reach from",
			columns: []rolas.TableColumn{rolas.RolasCol("titulo")},
			conditionals: []rolas.Conditional{
				rolas.EqVal{Column: rolas.AlbumsCol("nombre"), Value: "x"},
			},
			want: "SELECT rolas.titulo FROM rolas WHERE albums.nombre = 'x'",
		},
		{
			name: "empty columns are not guarded",
			want: "SELECT  FROM ",
		},
		{
			name:         "empty conditionals slice",
			columns:      []rolas.TableColumn{rolas.InGroupCol("id_group")},
			conditionals: []rolas.Conditional{},
			want:         "SELECT in_group.id_group FROM in_group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rolas.Select(tt.columns, tt.conditionals))
		})
	}
}

func TestSelect_Idempotent(t *testing.T) {
	columns := []rolas.TableColumn{rolas.RolasCol("titulo"), rolas.AlbumsCol("nombre")}
	conds := []rolas.Conditional{rolas.Like{Column: rolas.RolasCol("titulo"), Value: "amor"}}

	first := rolas.Select(columns, conds)
	assert.Equal(t, first, rolas.Select(columns, conds))
}

func TestSelect_Concurrent(t *testing.T) {
	columns := []rolas.TableColumn{rolas.AlbumsCol("nombre"), rolas.PerformersCol("nombre")}
	conds := []rolas.Conditional{rolas.Eq{Left: rolas.AlbumsCol("performer_id"), Right: rolas.PerformersCol("id")}}
	want := rolas.Select(columns, conds)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = rolas.Select(columns, conds)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestSelectLegacy(t *testing.T) {
	columns := []rolas.TableColumn{rolas.TypesCol("nombre")}
	one := []rolas.Conditional{rolas.EqVal{Column: rolas.TypesCol("nombre"), Value: "rock"}}
	two := append(one, rolas.Like{Column: rolas.TypesCol("nombre"), Value: "ro"})

	assert.Equal(t, "SELECT types.nombre FROM types", rolas.SelectLegacy(columns, nil))
	assert.Equal(t, "SELECT types.nombre FROM types", rolas.SelectLegacy(columns, one),
		"a single conditional is dropped")
	assert.Equal(t, "SELECT types.nombre FROM types WHERE types.nombre = 'rock' AND types.nombre LIKE '%ro%'",
		rolas.SelectLegacy(columns, two))
}

func TestTables(t *testing.T) {
	got := rolas.Tables([]rolas.TableColumn{
		rolas.InGroupCol("id_person"),
		rolas.PersonsCol("stage_name"),
		rolas.InGroupCol("id_group"),
		rolas.GroupsCol("name"),
		rolas.PersonsCol("real_name"),
	})
	assert.Equal(t, []rolas.Table{rolas.InGroup, rolas.Persons, rolas.Groups}, got)
	assert.Empty(t, rolas.Tables(nil))
}

func TestBuilder_Default(t *testing.T) {
	columns := []rolas.TableColumn{rolas.PersonsCol("real_name")}
	conds := []rolas.Conditional{rolas.EqVal{Column: rolas.PersonsCol("real_name"), Value: "O'Brien"}}

	got, err := rolas.NewBuilder().Build(columns, conds)
	require.NoError(t, err)
	assert.Equal(t, rolas.Select(columns, conds), got)
}

func TestBuilder_WhereThreshold(t *testing.T) {
	columns := []rolas.TableColumn{rolas.TypesCol("nombre")}
	conds := []rolas.Conditional{rolas.EqVal{Column: rolas.TypesCol("nombre"), Value: "rock"}}

	got, err := rolas.NewBuilder(rolas.WithWhereThreshold(0)).Build(columns, nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT types.nombre FROM types", got, "threshold below 1 behaves like 1")

	got, err = rolas.NewBuilder(rolas.WithWhereThreshold(2)).Build(columns, conds)
	require.NoError(t, err)
	assert.Equal(t, rolas.SelectLegacy(columns, conds), got)
}

func TestBuilder_LiteralEscaping(t *testing.T) {
	b := rolas.NewBuilder(rolas.WithLiteralEscaping())
	columns := []rolas.TableColumn{rolas.PersonsCol("real_name")}

	got, err := b.Build(columns, []rolas.Conditional{
		rolas.EqVal{Column: rolas.PersonsCol("real_name"), Value: "O'Brien"},
		rolas.Like{Column: rolas.PersonsCol("stage_name"), Value: "'; DROP TABLE rolas; --"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT persons.real_name FROM persons WHERE persons.real_name = 'O''Brien' AND persons.stage_name LIKE '%''; DROP TABLE rolas; --%'",
		got)

	_, err = b.Build(columns, []rolas.Conditional{
		rolas.EqVal{Column: rolas.PersonsCol("real_name"), Value: "line\nbreak"},
	})
	require.Error(t, err)
	assert.True(t, rolas.IsInvalidLiteralErr(err))
}

func TestBuilder_EscapingSkipsDroppedConditionals(t *testing.T) {
	b := rolas.NewBuilder(rolas.WithLiteralEscaping(), rolas.WithWhereThreshold(2))
	got, err := b.Build(
		[]rolas.TableColumn{rolas.RolasCol("titulo")},
		[]rolas.Conditional{rolas.EqVal{Column: rolas.RolasCol("titulo"), Value: "\x00"}},
	)
	require.NoError(t, err)
	assert.Equal(t, "SELECT rolas.titulo FROM rolas", got)
}

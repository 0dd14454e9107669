package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/rolas"
)

func TestParseColumnRef(t *testing.T) {
	col, err := ParseColumnRef("rola.titulo")
	require.NoError(t, err)
	assert.Equal(t, rolas.RolasCol("titulo"), col)

	col, err = ParseColumnRef("in_group.id_person")
	require.NoError(t, err)
	assert.Equal(t, rolas.InGroupCol("id_person"), col)

	for _, bad := range []string{"titulo", ".titulo", "rolas.", ""} {
		_, err := ParseColumnRef(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.Is(err, ErrInvalidArgument), bad)
	}

	_, err = ParseColumnRef("songs.title")
	require.Error(t, err)
	assert.True(t, rolas.IsUnknownTableErr(err))
}

func TestParseColumnRefs(t *testing.T) {
	cols, err := ParseColumnRefs([]string{"albums.nombre", "performer.nombre"})
	require.NoError(t, err)
	assert.Equal(t, []rolas.TableColumn{rolas.AlbumsCol("nombre"), rolas.PerformersCol("nombre")}, cols)

	_, err = ParseColumnRefs([]string{"albums.nombre", "nope.x"})
	assert.True(t, rolas.IsUnknownTableErr(err))
}

func TestParseConditional(t *testing.T) {
	tests := []struct {
		kind ConditionalKind
		arg  string
		want rolas.Conditional
	}{
		{KindEq, "albums.performer_id=performers.id", rolas.Eq{Left: rolas.AlbumsCol("performer_id"), Right: rolas.PerformersCol("id")}},
		{KindEqVal, "types.nombre=rock", rolas.EqVal{Column: rolas.TypesCol("nombre"), Value: "rock"}},
		{KindEqVal, "types.nombre=", rolas.EqVal{Column: rolas.TypesCol("nombre"), Value: ""}},
		{KindEqVal, "rolas.title=a=b", rolas.EqVal{Column: rolas.RolasCol("title"), Value: "a=b"}},
		{KindLike, "rola.titulo=amor", rolas.Like{Column: rolas.RolasCol("titulo"), Value: "amor"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+" "+tt.arg, func(t *testing.T) {
			got, err := ParseConditional(tt.kind, tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseConditional_Errors(t *testing.T) {
	_, err := ParseConditional(KindEq, "albums.performer_id")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = ParseConditional(KindEq, "albums.performer_id=42")
	assert.True(t, errors.Is(err, ErrInvalidArgument), "eq needs a column on the right")

	_, err = ParseConditional(KindLike, "songs.title=x")
	assert.True(t, rolas.IsUnknownTableErr(err))

	_, err = ParseConditional("gt", "rolas.year=1990")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitGeneral, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitParse, ExitCode(ParseError("bad column", rolas.ErrUnknownTable)))
	assert.Equal(t, ExitSchemaLoad, ExitCode(SchemaLoadError("loading schema", nil)))

	err := ConfigError("loading configuration", errors.New("bad yaml"))
	assert.Equal(t, "loading configuration: bad yaml", err.Error())
	assert.Equal(t, "database URL is required", DBConnectError("database URL is required", nil).Error())
}

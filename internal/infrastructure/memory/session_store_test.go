package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador/internal/application/billing"
	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/infrastructure/memory"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newSession(id string, now time.Time) *billing.Session {
	return billing.NewSession(id, billing.Captcha{A: 1, B: 2}, now)
}

func TestSessionStore_SaveGetDelete(t *testing.T) {
	clk := &clock{t: time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)}
	st := memory.NewSessionStore(10, time.Hour).WithClock(clk.now)

	require.NoError(t, st.Save(newSession("a", clk.t)))
	got, err := st.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, 1, st.Len())

	require.NoError(t, st.Delete("a"))
	_, err = st.Get("a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, st.Delete("a"), domain.ErrNotFound)
}

func TestSessionStore_Limite(t *testing.T) {
	clk := &clock{t: time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)}
	st := memory.NewSessionStore(2, time.Hour).WithClock(clk.now)

	require.NoError(t, st.Save(newSession("a", clk.t)))
	require.NoError(t, st.Save(newSession("b", clk.t)))
	assert.ErrorIs(t, st.Save(newSession("c", clk.t)), domain.ErrSessionLimit)

	// reemplazar una sesión existente no cuenta como nueva
	assert.NoError(t, st.Save(newSession("a", clk.t)))
}

func TestSessionStore_CaducidadPorInactividad(t *testing.T) {
	clk := &clock{t: time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)}
	st := memory.NewSessionStore(2, 30*time.Minute).WithClock(clk.now)

	require.NoError(t, st.Save(newSession("a", clk.t)))
	require.NoError(t, st.Save(newSession("b", clk.t)))

	clk.advance(20 * time.Minute)
	_, err := st.Get("a") // renueva "a"
	require.NoError(t, err)

	clk.advance(20 * time.Minute)
	_, err = st.Get("b")
	assert.ErrorIs(t, err, domain.ErrNotFound, "b lleva 40 minutos sin uso")
	_, err = st.Get("a")
	assert.NoError(t, err)

	require.NoError(t, st.Save(newSession("c", clk.t)))
	clk.advance(31 * time.Minute)
	assert.Equal(t, 2, st.PurgeExpired())
	assert.Zero(t, st.Len())
}

func TestSessionStore_SaveLiberaCaducadas(t *testing.T) {
	clk := &clock{t: time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)}
	st := memory.NewSessionStore(1, time.Minute).WithClock(clk.now)

	require.NoError(t, st.Save(newSession("a", clk.t)))
	clk.advance(2 * time.Minute)
	assert.NoError(t, st.Save(newSession("b", clk.t)), "la sesión caducada deja hueco")
	assert.Equal(t, 1, st.Len())
}

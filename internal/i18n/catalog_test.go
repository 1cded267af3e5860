package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAndResolve(t *testing.T) {
	t.Parallel()

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "en", c.Locales()[0])
	require.Contains(t, c.Locales(), "fr")

	en := c.For("en")
	require.Equal(t, "Log in", en.T("page.me.login"))
	require.Equal(t, "Welcome back, Ada.", en.Tf("page.home.welcome", "Ada"))

	fr := c.For("fr-CA")
	require.Equal(t, "fr", Locale(fr))
	require.Equal(t, "Connexion", fr.T("page.me.login"))
}

func TestUnknownIdsAndLocales(t *testing.T) {
	t.Parallel()

	c, err := Load()
	require.NoError(t, err)
	l := c.For("xx")
	require.Equal(t, "en", Locale(l))
	require.Equal(t, "no.such.id", l.T("no.such.id"))
}

func TestSwitchChangesLocaleInPlace(t *testing.T) {
	t.Parallel()

	c, err := Load()
	require.NoError(t, err)
	s := NewSwitch(c, "en")
	var l Localizer = s
	require.Equal(t, "Log in", l.T("page.me.login"))

	s.SetLocale("fr")
	require.Equal(t, "Connexion", l.T("page.me.login"))
	require.Equal(t, "fr", Locale(l))
}

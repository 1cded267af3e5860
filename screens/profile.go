package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/core"
	"github.com/jask/navshell/internal/i18n"
	"github.com/jask/navshell/widgets"
)

// Profile shows the signed-in account.
type Profile struct {
	loc            i18n.Localizer
	fallbackAvatar func() string
}

func NewProfile(loc i18n.Localizer, fallbackAvatar func() string) *Profile {
	return &Profile{loc: loc, fallbackAvatar: fallbackAvatar}
}

func (p *Profile) Mount(core.Props[struct{}]) tea.Cmd           { return nil }
func (p *Profile) Update(core.Props[struct{}], tea.Msg) tea.Cmd { return nil }

func (p *Profile) View(props core.Props[struct{}], width, height int) string {
	title := p.loc.T("page.me.profile")
	u, ok := props.State.User()
	if !ok {
		return page(width, height, titleStyle.Render(title), mutedStyle.Render(p.loc.T("profile.anonymous")))
	}
	avatar := u.AvatarURL
	if avatar == "" && p.fallbackAvatar != nil {
		avatar = p.fallbackAvatar()
	}
	return render(width, height, widgets.Box{
		Title: titleStyle.UnsetMarginBottom().Render(title),
		Body: fields(
			widgets.Field{Label: p.loc.T("profile.name"), Value: textStyle.Render(u.Name)},
			widgets.Field{Label: p.loc.T("profile.avatar"), Value: textStyle.Render(avatar)},
			widgets.Field{Label: p.loc.T("profile.id"), Value: mutedStyle.Render(u.ID)},
		),
	})
}

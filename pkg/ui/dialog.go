package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/tix/pkg/model"
)

// DialogMode distinguishes creating a ticket from editing one.
type DialogMode int

const (
	DialogCreate DialogMode = iota
	DialogEdit
)

const (
	subjectLimit     = 200
	descriptionLimit = 2000
	dialogWidth      = 64
)

// Dialog is the create/edit form shown over the list. It wraps a huh.Form
// that is driven from the model's update loop, so the form's submit and
// abort commands are disabled and the model polls Submitted/Cancelled after
// each update instead.
type Dialog struct {
	mode     DialogMode
	original model.Ticket
	theme    Theme
	form     *huh.Form

	subject     string
	priority    model.Priority
	status      model.Status
	description string
}

// NewCreateDialog returns an empty form for a new ticket. Status is not
// asked for; new tickets start Open.
func NewCreateDialog(theme Theme) *Dialog {
	d := &Dialog{mode: DialogCreate, theme: theme, status: model.StatusOpen}
	d.form = d.buildForm()
	return d
}

// NewEditDialog returns a form prefilled with t.
func NewEditDialog(t model.Ticket, theme Theme) *Dialog {
	d := &Dialog{
		mode:        DialogEdit,
		original:    t,
		theme:       theme,
		subject:     t.Subject,
		priority:    t.Priority,
		status:      t.Status,
		description: t.Description,
	}
	d.form = d.buildForm()
	return d
}

func (d *Dialog) buildForm() *huh.Form {
	priorities := make([]huh.Option[model.Priority], 0, 4)
	if d.mode == DialogCreate {
		priorities = append(priorities, huh.NewOption("Select priority", model.Priority("")))
	}
	for _, p := range model.AllPriorities() {
		priorities = append(priorities, huh.NewOption(string(p), p))
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Subject").
			CharLimit(subjectLimit).
			Value(&d.subject).
			Validate(required("subject")),
		huh.NewSelect[model.Priority]().
			Title("Priority").
			Options(priorities...).
			Value(&d.priority).
			Validate(func(p model.Priority) error {
				if !p.IsValid() {
					return errors.New("priority is required")
				}
				return nil
			}),
	}
	if d.mode == DialogEdit {
		statuses := make([]huh.Option[model.Status], 0, 3)
		for _, s := range model.AllStatuses() {
			statuses = append(statuses, huh.NewOption(string(s), s))
		}
		fields = append(fields, huh.NewSelect[model.Status]().
			Title("Status").
			Options(statuses...).
			Value(&d.status))
	}
	fields = append(fields, huh.NewText().
		Title("Description").
		CharLimit(descriptionLimit).
		Lines(4).
		Value(&d.description).
		Validate(required("description")))

	keys := huh.NewDefaultKeyMap()
	keys.Quit = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(huh.ThemeDracula()).
		WithKeyMap(keys).
		WithShowHelp(true).
		WithWidth(dialogWidth)
	form.SubmitCmd = nil
	form.CancelCmd = nil
	return form
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// Mode reports whether the dialog creates or edits.
func (d *Dialog) Mode() DialogMode {
	return d.mode
}

// Init starts the form (cursor blink, first field focus).
func (d *Dialog) Init() tea.Cmd {
	return d.form.Init()
}

// Update forwards msg to the form. The form needs every message type, not
// only keys, for its internal field navigation.
func (d *Dialog) Update(msg tea.Msg) tea.Cmd {
	m, cmd := d.form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		d.form = f
	}
	return cmd
}

// Submitted reports whether the user completed the form.
func (d *Dialog) Submitted() bool {
	return d.form.State == huh.StateCompleted
}

// Cancelled reports whether the user dismissed the form.
func (d *Dialog) Cancelled() bool {
	return d.form.State == huh.StateAborted
}

// Ticket returns the entered values as a ticket, validated. In edit mode the
// original id is kept.
func (d *Dialog) Ticket() (model.Ticket, error) {
	t := model.Ticket{
		ID:          d.original.ID,
		Subject:     strings.TrimSpace(d.subject),
		Priority:    d.priority,
		Status:      d.status,
		Description: strings.TrimSpace(d.description),
	}
	if err := t.Validate(); err != nil {
		return model.Ticket{}, err
	}
	return t, nil
}

// Patch returns the fields changed relative to the ticket being edited.
func (d *Dialog) Patch() (model.TicketPatch, error) {
	t, err := d.Ticket()
	if err != nil {
		return model.TicketPatch{}, err
	}
	return d.original.Diff(t), nil
}

// View renders the form in a bordered box.
func (d *Dialog) View() string {
	title := "New ticket"
	if d.mode == DialogEdit {
		title = fmt.Sprintf("Edit ticket #%d", d.original.ID)
	}
	header := d.theme.PrimaryBold.Render(title)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.theme.Primary).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, "", d.form.View()))
}

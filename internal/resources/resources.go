package resources

import (
	"github.com/luantnk/SmartQuitIoT-sub002/internal/api"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/session"
)

// Console bundles one client per management collection, all sharing the same
// session-managed transport.
type Console struct {
	Auth          *Auth
	Members       *Members
	Coaches       *Coaches
	Payments      *Payments
	Subscriptions *Subscriptions
	News          *News
	Achievements  *Achievements
	Slots         *Slots
	Reminders     *Reminders
	Appointments  *Appointments
	Chat          *Chat
}

func NewConsole(client *api.Client, manager *session.Manager) *Console {
	return &Console{
		Auth:          NewAuth(client, manager),
		Members:       NewMembers(client),
		Coaches:       NewCoaches(client),
		Payments:      NewPayments(client),
		Subscriptions: NewSubscriptions(client),
		News:          NewNews(client),
		Achievements:  NewAchievements(client),
		Slots:         NewSlots(client),
		Reminders:     NewReminders(client),
		Appointments:  NewAppointments(client),
		Chat:          NewChat(client),
	}
}

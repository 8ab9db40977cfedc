package notify

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"kanalsepet/internal/domain/entities"
	"kanalsepet/internal/infrastructure/realtime"
	"kanalsepet/internal/observability"
	"kanalsepet/internal/platform/logger"
	"kanalsepet/internal/usecase/interfaces"
)

const (
	autoDismissAfter = 5 * time.Second
	reloadAfter      = 3 * time.Second
)

// Center is the user-visible notification surface. Entries broadcast to the
// UI channel, auto-expire after a fixed delay (mirroring the client's toast
// dismiss), and can be dismissed early by id.
//
// Critical raises an entry and then broadcasts a reload event after a fixed
// delay: the forced-reload path is the system's only recovery strategy when
// local state is unrecoverable.
//
// Installed once at startup, never torn down during a session.
type Center struct {
	mu      sync.Mutex
	entries map[string]entities.Notification
	hub     *realtime.Hub
	log     *logger.Logger
	now     func() time.Time
	// after is swappable in tests to avoid real timers.
	after func(d time.Duration, f func()) *time.Timer
}

var _ interfaces.INotifier = (*Center)(nil)

func NewCenter(hub *realtime.Hub, log *logger.Logger) *Center {
	return &Center{
		entries: make(map[string]entities.Notification),
		hub:     hub,
		log:     log.With("component", "notify"),
		now:     time.Now,
		after:   time.AfterFunc,
	}
}

func (c *Center) Info(message, details string)    { c.push(entities.SeverityInfo, message, details) }
func (c *Center) Warning(message, details string) { c.push(entities.SeverityWarning, message, details) }
func (c *Center) Error(message, details string)   { c.push(entities.SeverityError, message, details) }

func (c *Center) Critical(message, details string) {
	c.push(entities.SeverityCritical, message, details)
	c.log.Error("critical failure, scheduling session reload", "message", message, "details", details)
	c.after(reloadAfter, func() {
		c.hub.Broadcast(realtime.Message{Channel: realtime.ChannelUI, Event: realtime.EventReload})
	})
}

func (c *Center) push(severity entities.Severity, message, details string) {
	n := entities.Notification{
		ID:        uuid.NewString(),
		Severity:  severity,
		Message:   message,
		Details:   details,
		CreatedAt: c.now(),
	}

	c.mu.Lock()
	c.entries[n.ID] = n
	c.mu.Unlock()

	observability.NotificationsTotal.WithLabelValues(string(severity)).Inc()
	switch severity {
	case entities.SeverityInfo:
		c.log.Info(message, "details", details)
	case entities.SeverityWarning:
		c.log.Warn(message, "details", details)
	default:
		c.log.Error(message, "details", details)
	}

	c.hub.Broadcast(realtime.Message{
		Channel: realtime.ChannelUI,
		Event:   realtime.EventNotification,
		Data:    n,
	})
	c.after(autoDismissAfter, func() { c.Dismiss(n.ID) })
}

// Dismiss removes an entry by id. Unknown ids are a no-op, so the auto-expiry
// timer and a manual dismissal never conflict.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	_, existed := c.entries[id]
	delete(c.entries, id)
	c.mu.Unlock()

	if existed {
		c.hub.Broadcast(realtime.Message{
			Channel: realtime.ChannelUI,
			Event:   realtime.EventNotificationDismiss,
			Data:    map[string]string{"id": id},
		})
	}
}

// Active returns the undismissed entries, newest last.
func (c *Center) Active() []entities.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entities.Notification, 0, len(c.entries))
	for _, n := range c.entries {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Recover routes a goroutine panic into the notification surface instead of
// crashing the process. Use as: defer center.Recover("component").
func (c *Center) Recover(where string) {
	if r := recover(); r != nil {
		c.log.Error("recovered from panic", "where", where, "panic", r)
		c.Error("Beklenmeyen bir hata oluştu", where)
	}
}

// Package messages renders user-facing alert and notification texts from the embedded catalog.
package messages

import (
	"context"
	"embed"
	"encoding/json"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	LeaveRequested          = "leave.requested"
	LeaveTeamRequested      = "leave.team_requested"
	LeaveLevelApproved      = "leave.level_approved"
	LeaveFullyApproved      = "leave.fully_approved"
	LeaveRejected           = "leave.rejected"
	SubscriptionActivated   = "subscription.activated"
	SubscriptionPlanUpdated = "subscription.plan_updated"
	SubscriptionCancelled   = "subscription.cancelled"
	SubscriptionRenewal     = "subscription.renewal_reminder"
	ProjectAssigned         = "project.assigned"
	ProjectUpdated          = "project.updated"
	TaskAssigned            = "task.assigned"
	TaskUpdated             = "task.updated"
	WorkStarted             = "work.started"
	WorkStopped             = "work.stopped"
	WorkOvertimeStop        = "work.overtime_stop"
	WorkOvertimeWarning     = "work.overtime_warning"
	WorkOvertimeTitle       = "work.overtime_warning_title"
	EventCreated            = "event.created"
	EventUpdated            = "event.updated"
	EventDeleted            = "event.deleted"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundle        *i18n.Bundle
	defaultLocale = "en"
	loadOnce      sync.Once
)

type ctxKey struct{}

// Init sets the default locale. The catalog itself is loaded on first use.
func Init(locale string) {
	if locale != "" {
		defaultLocale = locale
	}
	load()
}

func load() {
	loadOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("json", json.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			zap.L().Named("messages").Error("read locales dir failed", zap.Error(err))
			bundle = b
			return
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			data, err := localeFS.ReadFile("locales/" + e.Name())
			if err != nil {
				zap.L().Named("messages").Error("read locale file failed", zap.String("file", e.Name()), zap.Error(err))
				continue
			}
			if _, err := b.ParseMessageFileBytes(data, e.Name()); err != nil {
				zap.L().Named("messages").Error("parse locale file failed", zap.String("file", e.Name()), zap.Error(err))
			}
		}
		bundle = b
	})
}

func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxKey{}, locale)
}

func LocaleFromContext(ctx context.Context) string {
	if ctx != nil {
		if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
			return v
		}
	}
	return defaultLocale
}

// T renders messageID in the context locale. Unknown ids render as the id itself.
func T(ctx context.Context, messageID string, data ...map[string]any) string {
	load()
	l := i18n.NewLocalizer(bundle, LocaleFromContext(ctx), defaultLocale)

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(data) > 0 && data[0] != nil {
		cfg.TemplateData = data[0]
	}

	msg, err := l.Localize(cfg)
	if err != nil {
		return messageID
	}
	return msg
}

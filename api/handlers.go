package api

import (
	"time"

	"github.com/jrmferreira/construcoes-backend/config"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies, c map[string]string, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(deps.Repo, deps.Gallery, deps.CommentNotifier),
		contactHandler: newContactHandler(deps.Contact, config.GetString(c, "WHATSAPP_CHAT_NUMBER", "")),
		siteHandler:    newSiteHandler(startupTime),
	}
}

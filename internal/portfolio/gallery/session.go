// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import "time"

// Session is one viewer opened on one project.
type Session struct {
	ID        string    `json:"id"`
	ProjectID int       `json:"projectId"`
	State     State     `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
}

// View is the client-facing snapshot of a session.
type View struct {
	SessionID         string   `json:"sessionId"`
	ProjectID         int      `json:"projectId"`
	Images            []string `json:"images"`
	CurrentIndex      int      `json:"currentIndex"`
	CurrentImage      string   `json:"currentImage"`
	IsOpen            bool     `json:"isOpen"`
	SwipeGuideVisible bool     `json:"swipeGuideVisible"`
}

// InputResult reports whether a key or swipe changed the viewer.
type InputResult struct {
	View
	Handled bool `json:"handled"`
}

func newView(session *Session, controller *Controller) View {
	return View{
		SessionID:         session.ID,
		ProjectID:         session.ProjectID,
		Images:            controller.State().Images,
		CurrentIndex:      controller.CurrentIndex(),
		CurrentImage:      controller.Current(),
		IsOpen:            controller.IsOpen(),
		SwipeGuideVisible: controller.SwipeGuideVisible(),
	}
}

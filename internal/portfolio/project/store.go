// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project

import "context"

// Repository reads the project catalog.
type Repository interface {
	// All returns every project in catalog order.
	All(context context.Context) ([]*Project, error)

	// Get returns one project or a NOT_FOUND error.
	Get(context context.Context, id int) (*Project, error)
}

package helper

import "refuge-connect/internal/types"

// Directory lists local helpers. Every helper is always shown, in seed order.
type Directory interface {
	All() []types.Helper
}

// Repository supplies the read-only helper catalog
type Repository interface {
	Helpers() []types.Helper
}

type directory struct {
	repo Repository
}

func NewDirectory(repo Repository) Directory {
	return &directory{repo: repo}
}

func (d *directory) All() []types.Helper {
	return d.repo.Helpers()
}

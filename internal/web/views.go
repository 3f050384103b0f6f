package web

import (
	"time"

	"refuge-connect/internal/translation"
	"refuge-connect/internal/types"
)

// NavLink is one entry of the header navigation
type NavLink struct {
	Label string
	Href  string
}

// Layout carries what the shared header and footer need
type Layout struct {
	Title      string
	Nav        []NavLink
	ShowSignIn bool
	Year       int
	Refresh    int // seconds; zero disables the meta refresh
}

func newLayout(title string, nav ...NavLink) Layout {
	return Layout{
		Title: title,
		Nav:   nav,
		Year:  time.Now().Year(),
	}
}

var (
	navHome      = NavLink{Label: "Home", Href: "/"}
	navLocations = NavLink{Label: "Locations", Href: "/locations"}
	navAssist    = NavLink{Label: "Assistance", Href: "/assistance"}
)

// Feature is a card in the landing page feature grid
type Feature struct {
	Icon        string
	Title       string
	Description string
}

var features = []Feature{
	{
		Icon:        "users",
		Title:       "Experience Share",
		Description: "Share and search for experiences from other refugees to help guide your journey.",
	},
	{
		Icon:        "home",
		Title:       "Best Places for Refugees",
		Description: "Find the most welcoming cities and places for refugees based on community feedback.",
	},
	{
		Icon:        "globe",
		Title:       "Language Translation",
		Description: "Break language barriers with our built-in translation services for better communication.",
	},
	{
		Icon:        "message",
		Title:       "AI Assistance",
		Description: "Get personalized help through our AI-powered assistance.",
	},
}

type LandingPage struct {
	Layout
	Features []Feature
}

func NewLandingPage() LandingPage {
	layout := newLayout("Find Safe Places for Refugees", navHome, navLocations, navAssist)
	layout.ShowSignIn = true
	return LandingPage{
		Layout:   layout,
		Features: append([]Feature(nil), features...),
	}
}

type LocationsPage struct {
	Layout
	Filter    string
	Locations []types.Location
}

func NewLocationsPage(filter string, locations []types.Location) LocationsPage {
	return LocationsPage{
		Layout:    newLayout("Safe Locations for Refugees", navHome, navAssist),
		Filter:    filter,
		Locations: locations,
	}
}

type AssistancePage struct {
	Layout
	Languages []translation.Language
	State     translation.State
	Helpers   []types.Helper
	Error     string
}

// NewAssistancePage refreshes itself every second while a translation is pending
func NewAssistancePage(state translation.State, helpers []types.Helper) AssistancePage {
	layout := newLayout("Refugee Assistance & Translation", navHome, navLocations)
	if state.InFlight {
		layout.Refresh = 1
	}
	return AssistancePage{
		Layout:    layout,
		Languages: translation.Languages(),
		State:     state,
		Helpers:   helpers,
	}
}

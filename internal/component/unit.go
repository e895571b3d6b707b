package component

// Unit — управляемый игроком юнит
type Unit struct {
	Name   string
	Health int
}

// Selectable marks units the player may select.
type Selectable struct{}

// Name is a human-readable label, mostly for logs.
type Name struct {
	Value string
}

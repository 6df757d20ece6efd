package catalog

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrUILevelNotFound = errors.New("ui level not found")
)

// Service - a fixed catalog entry with a base price and an alternative
// lifetime-updates price. Prices are whole INR.
type Service struct {
	ID            string
	Title         string
	Price         int
	LifetimePrice int
}

// UILevel - a fixed project UI tier
type UILevel struct {
	ID    string
	Name  string
	Price int
}

// Services is the fixed service catalog.
var Services = []Service{
	{ID: "fullstack-web", Title: "Full Stack Web Development", Price: 249, LifetimePrice: 499},
	{ID: "minecraft-store", Title: "Minecraft Store Development", Price: 129, LifetimePrice: 399},
	{ID: "discord-server", Title: "Discord Server Development", Price: 89, LifetimePrice: 189},
	{ID: "discord-bot", Title: "Discord Bot Development", Price: 169, LifetimePrice: 399},
	{ID: "app-dev", Title: "App Development", Price: 299, LifetimePrice: 499},
	{ID: "admin-dashboard", Title: "Admin Dashboards", Price: 159, LifetimePrice: 269},
	{ID: "minecraft-plugin", Title: "Minecraft Plugin Development", Price: 199, LifetimePrice: 399},
}

// UILevels is the fixed list of project UI tiers.
var UILevels = []UILevel{
	{ID: "low", Name: "Low Level UI", Price: 284},
	{ID: "medium", Name: "Medium Level UI", Price: 349},
	{ID: "high", Name: "High Level UI", Price: 429},
}

// FindService returns the catalog entry by identifier.
func FindService(id string) (*Service, error) {
	for _, s := range Services {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, ErrServiceNotFound
}

// FindUILevel returns the UI tier by identifier.
func FindUILevel(id string) (*UILevel, error) {
	for _, l := range UILevels {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, ErrUILevelNotFound
}

// TotalPrice computes the order total. The lifetime-updates flag selects
// the lifetime price instead of the base price, never in addition to it.
func (s Service) TotalPrice(lifetimeUpdates bool) int {
	if lifetimeUpdates {
		return s.LifetimePrice
	}
	return s.Price
}

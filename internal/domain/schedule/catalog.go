package schedule

// ServiceInfo est la vue catalogue d'un soin, telle que consommée par le
// moteur de disponibilité. Dupliquée depuis models.Service pour garder ce
// package sans dépendance vers gorm.
type ServiceInfo struct {
	Slug       string
	Name       string
	Duration   int // minutes
	Price      float64
	PromoPrice *float64
}

// BillingPrice retourne le prix facturé (le prix promo prime).
func (s ServiceInfo) BillingPrice() float64 {
	if s.PromoPrice != nil {
		return *s.PromoPrice
	}
	return s.Price
}

// Catalog indexe les soins par slug et par nom lisible.
type Catalog struct {
	bySlug map[string]ServiceInfo
	byName map[string]ServiceInfo
}

func NewCatalog(services []ServiceInfo) Catalog {
	c := Catalog{
		bySlug: make(map[string]ServiceInfo, len(services)),
		byName: make(map[string]ServiceInfo, len(services)),
	}
	for _, s := range services {
		if s.Slug != "" {
			c.bySlug[s.Slug] = s
		}
		if s.Name != "" {
			c.byName[s.Name] = s
		}
	}
	return c
}

func (c Catalog) BySlug(slug string) (ServiceInfo, bool) {
	s, ok := c.bySlug[slug]
	return s, ok
}

func (c Catalog) ByName(name string) (ServiceInfo, bool) {
	s, ok := c.byName[name]
	return s, ok
}

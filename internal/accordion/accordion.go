// Package accordion keeps at most one detail panel open per site group.
package accordion

// Panel names rendered for every site.
const (
	PanelBestsellers = "bestsellers"
	PanelChanges     = "changes"
	PanelProducts    = "products"
)

// Handle is an already-rendered panel whose open state can be read and set.
type Handle interface {
	Group() string
	Name() string
	IsOpen() bool
	SetOpen(open bool)
}

// Coordinator holds the registry of panels by group. The registry is built once
// at construction; reactions never scan for siblings.
type Coordinator struct {
	groups map[string][]Handle
	order  []string
}

// New registers the given handles by their group.
func New(handles ...Handle) *Coordinator {
	c := &Coordinator{groups: make(map[string][]Handle)}

	for _, h := range handles {
		g := h.Group()
		if _, ok := c.groups[g]; !ok {
			c.order = append(c.order, g)
		}
		c.groups[g] = append(c.groups[g], h)
	}

	return c
}

// Toggled reacts to a toggle event on h. When h is now open every other panel
// of its group is closed; panels of other groups are left alone.
func (c *Coordinator) Toggled(h Handle) {
	if !h.IsOpen() {
		return
	}

	for _, other := range c.groups[h.Group()] {
		if other != h && other.IsOpen() {
			other.SetOpen(false)
		}
	}
}

// Open opens h and applies the exclusivity rule.
func (c *Coordinator) Open(h Handle) {
	h.SetOpen(true)
	c.Toggled(h)
}

// Close closes h only.
func (c *Coordinator) Close(h Handle) {
	h.SetOpen(false)
}

// Lookup finds a registered panel by group and name.
func (c *Coordinator) Lookup(group, name string) (Handle, bool) {
	for _, h := range c.groups[group] {
		if h.Name() == name {
			return h, true
		}
	}

	return nil, false
}

// Group returns the panels registered under a group.
func (c *Coordinator) Group(group string) []Handle {
	return append([]Handle(nil), c.groups[group]...)
}

// Groups returns group identities in registration order.
func (c *Coordinator) Groups() []string {
	return append([]string(nil), c.order...)
}

// OpenPanels returns the open panels of a group.
func (c *Coordinator) OpenPanels(group string) []Handle {
	var open []Handle
	for _, h := range c.groups[group] {
		if h.IsOpen() {
			open = append(open, h)
		}
	}

	return open
}

// Panel is an in-memory handle. Its zero state is closed.
type Panel struct {
	group string
	name  string
	open  bool
}

// NewPanel creates a closed panel.
func NewPanel(group, name string) *Panel {
	return &Panel{group: group, name: name}
}

func (p *Panel) Group() string { return p.group }

func (p *Panel) Name() string { return p.name }

func (p *Panel) IsOpen() bool { return p.open }

func (p *Panel) SetOpen(open bool) { p.open = open }

// SitePanels creates the three closed panels of one site.
func SitePanels(site string) []Handle {
	return []Handle{
		NewPanel(site, PanelBestsellers),
		NewPanel(site, PanelChanges),
		NewPanel(site, PanelProducts),
	}
}

package department

// UnassignedLabel is what admin views show when an employee has no
// department link.
const UnassignedLabel = "Unassigned"

type Department struct {
	ID          int64
	Name        string
	Description *string
}

type View struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func NewView(d Department) View {
	return View{ID: d.ID, Name: d.Name, Description: d.Description}
}

func NewViews(departments []Department) []View {
	views := make([]View, 0, len(departments))
	for _, d := range departments {
		views = append(views, NewView(d))
	}
	return views
}

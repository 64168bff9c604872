package teams

// TeamInput carries the editable field set of a team. Update replaces all of
// it wholesale; there is no partial merge.
//
// Lng/Lat are pointers so a missing headquarters component is
// distinguishable from zero.
type TeamInput struct {
	Name        string
	Description string
	Lng         *float64
	Lat         *float64
	City        string
	State       string
	Country     string
}

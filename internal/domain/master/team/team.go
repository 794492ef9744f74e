package team

type Team struct {
	ID   string
	Name string
}

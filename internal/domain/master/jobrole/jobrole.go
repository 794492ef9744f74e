package jobrole

type JobRole struct {
	ID   string
	Name string
}

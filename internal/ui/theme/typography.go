package theme

type Typography struct {
	Title int32
	Body  int32
	Small int32
	Debug int32
}

var Type = Typography{
	Title: 30,
	Body:  20,
	Small: 16,
	Debug: 14,
}

package entity

// District is one node of the province/city/area tree. Parent is the code of
// the enclosing region ("86" at the top level).
type District struct {
	ID     int64
	Parent string
	Code   string
	Name   string
}

package horario

// Module is one institutional teaching period. The academic day is
// divided into fixed numbered modules; the printable table reports
// which modules each section occupies.
type Module struct {
	Number int
	Start  string
	End    string
}

// Modules are the 13 teaching periods of the academic day, in order.
var Modules = []Module{
	{1, "08:31", "09:10"},
	{2, "09:11", "09:50"},
	{3, "10:01", "10:40"},
	{4, "10:41", "11:20"},
	{5, "11:31", "12:10"},
	{6, "12:11", "12:50"},
	{7, "13:01", "13:40"},
	{8, "13:41", "14:20"},
	{9, "14:31", "15:10"},
	{10, "15:11", "15:50"},
	{11, "16:01", "16:40"},
	{12, "16:41", "17:20"},
	{13, "17:31", "18:10"},
}

// Covers reports whether the block fully contains the module: a module
// cell is marked only when the class spans the whole period.
func (m Module) Covers(b TimeBlock) bool {
	return b.Start <= m.Start && b.End >= m.End
}

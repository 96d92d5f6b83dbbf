package components

import (
	"github.com/pthm/frcmp"
	ui "github.com/pthm/frcmp/components"
)

// C holds the page's component instances for use in templates.
var C struct {
	Cards  *CardGrid
	Notice *ui.DismissibleNotice
}

// Init creates the components with their dependencies and registers
// them. Call it once at startup before handling requests.
func Init(kit *ui.Kit, store ArticleStore, notices ui.NoticeStore, reg *frcmp.Registry) {
	C.Cards = NewCardGrid(kit, store)
	C.Notice = ui.NewDismissibleNotice(kit, notices)
	reg.Add(C.Cards, C.Notice)
}

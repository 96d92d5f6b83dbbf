package frcmp

// SwapMode is an HTMX swap strategy: how response HTML replaces the
// target element. The default everywhere in this package is SwapOuter.
//
// See https://htmx.org/attributes/hx-swap/ for visual examples.
type SwapMode string

const (
	// SwapOuter replaces the entire element including its tag
	// (outerHTML). The default, and what component re-renders want.
	SwapOuter SwapMode = "outerHTML"

	// SwapInner replaces only the element's contents (innerHTML).
	SwapInner SwapMode = "innerHTML"

	// SwapBeforeEnd appends to the target's contents. Used for adding
	// items to lists and by the flash OOB swap into #fr-alerts.
	SwapBeforeEnd SwapMode = "beforeend"

	// SwapAfterEnd inserts after the target element.
	SwapAfterEnd SwapMode = "afterend"

	// SwapBeforeBegin inserts before the target element.
	SwapBeforeBegin SwapMode = "beforebegin"

	// SwapAfterBegin prepends to the target's contents.
	SwapAfterBegin SwapMode = "afterbegin"

	// SwapDelete removes the target element; the response body is
	// ignored. Pairs with Skip results for dismissals.
	SwapDelete SwapMode = "delete"

	// SwapNone performs no swap - the response is discarded. Headers
	// (triggers, redirects) still apply.
	SwapNone SwapMode = "none"
)

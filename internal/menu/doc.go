// Package menu implements the screen setup menus: the theme and layout
// carousels, the per-screen setup pages, the widgets overview with its
// picker and settings panel, and the add/remove/move screen flows.
//
// Every handler runs once per frame with exactly one event. Navigation
// state lives in a Context owned by the open page; it is reset when the
// page receives event.Entry and discarded when the page is popped.
//
// A Controller ties the pages to a screens.Set and a drawing surface and
// also runs the main view shown while no menu is open:
//
//	ctrl := menu.NewController(menu.Config{
//	    Catalog: catalog,
//	    Set:     set,
//	    General: store.General,
//	    Dirty:   store,
//	    Surface: grid,
//	})
//	ctrl.Run(event.KeyBreak(event.KeyEnter))
package menu

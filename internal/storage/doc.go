// Package storage holds the persisted configuration records owned by the
// screen editor and the YAML-backed store that flushes them to disk.
//
// # Records
//
//	ModelData.Screens[i]            one ScreenData per custom screen slot
//	  LayoutName                    empty means "slot unused"
//	  Layout.Options[...]           layout option block
//	  Layout.Zones[z].WidgetName    empty means "zone empty"
//	  Layout.Zones[z].Widget        widget option block
//	GeneralData
//	  ThemeName, Theme.Options[...]
//
// Every block is a distinct fixed-size array element, so a factory handed
// &data.Zones[z].Widget can never alias another zone's block. Records live as
// long as the model; instances built from them only hold references.
//
// # Dirty tracking
//
// The editor never writes files. It calls MarkDirty(ScopeModel) or
// MarkDirty(ScopeGeneral) and the owner of the Store decides when to Flush:
//
//	store.MarkDirty(storage.ScopeModel)
//	...
//	if store.Dirty() {
//	    if err := store.Flush(); err != nil {
//	        logging.Error("Flush failed", zap.Error(err))
//	    }
//	}
//
// Flush writes through a temporary file and an atomic rename.
package storage

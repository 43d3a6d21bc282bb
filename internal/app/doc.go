// Package app assembles a running screen editor session.
//
// A Session owns the record store, the sealed factory catalog, the screen
// set and the menu controller drawing onto an lcd.Grid. Front ends (the
// terminal simulator and the preview server) feed it one event per frame
// through Step and read the rendered frame back:
//
//	sess, err := app.New(app.Options{ModelPath: "model.yaml", GeneralPath: "radio.yaml"})
//	if err != nil {
//	    return err
//	}
//	defer sess.Close()
//
//	sess.Step(event.KeyLong(event.KeyEnter))
//	fmt.Println(sess.Grid().String())
//
// Dirty records are flushed once they have been dirty for FlushDelay, and
// always on Close. A Session is not safe for concurrent use.
package app

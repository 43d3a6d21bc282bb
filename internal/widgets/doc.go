// Package widgets provides the built-in widget factories.
//
// Register adds them to a widget registry in picker order: Value, Text,
// Timer, Gauge, ModelName. Widgets read live values through a Telemetry;
// Static is used when nothing better is available.
package widgets

// Package export renders decoded annotation pages as flat JSON or YAML
// listings for training pipelines.
//
// Each symbol of the page tree becomes one Entry carrying its path, the path
// of its parent, its shape name and label, and its bounds at the persisted
// precision. Symbols without a recognized shape either appear with an empty
// shape or, with SkipUnclassified, are dropped and logged so that a training
// run never silently learns from a degraded record.
package export

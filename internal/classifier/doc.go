// Package classifier maps repository file paths to submission
// classifications.
//
// Classification is a pure function of the path segments and the tree entry
// kind. Paths are matched against an ordered rule table; the first rejecting
// rule stops evaluation, and the remaining rules fill in the fields of the
// [models.Classification].
package classifier

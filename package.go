//
// web service that accepts the values teachers type into
// gradebook cells together with the assignment's grading
// settings (how grades are entered, the grading scheme and
// the points possible).
// package then normalises each value into a canonical grade
// entry - display grade plus score in points - so that points,
// percentages, scheme keys and pass/fail marks can all be
// stored and compared consistently.
//
package otfgrade

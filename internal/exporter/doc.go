// Package exporter serializes the merged import table. The primary
// output is a delimited text file (tab-separated by default) with one
// header row and empty fields for absent values; an xlsx workbook copy
// can be written alongside for the reporting surface.
package exporter

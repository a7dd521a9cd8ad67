// Package greenops turns a carbon footprint in kg CO2e into relatable
// equivalencies such as miles driven or tree seedlings grown, using EPA
// greenhouse gas equivalency factors.
package greenops

// Package templates owns the naming convention for project templates
// (<type>-project.yaml), the default template set embedded in the binary, and
// helpers to install those defaults and enumerate what a template directory
// provides.
package templates

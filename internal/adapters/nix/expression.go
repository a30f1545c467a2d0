// Package nix realizes declared dev shells through the external Nix CLI.
package nix

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/shed/internal/core/domain"
)

// RenderFlake renders the declaration as a flake expression the external
// evaluator can consume directly. The output is deterministic: inputs,
// platforms, packages, and extensions all appear in sorted order.
func RenderFlake(decl *domain.Declaration) string {
	var b strings.Builder

	b.WriteString("{\n")
	if decl.Description != "" {
		fmt.Fprintf(&b, "  description = %q;\n\n", decl.Description)
	}

	inputNames := sortedKeys(decl.Inputs)
	for _, name := range inputNames {
		fmt.Fprintf(&b, "  inputs.%s.url = %q;\n", name, decl.Inputs[name].FlakeRef())
	}

	fmt.Fprintf(&b, "\n  outputs = { self, %s }: {\n", strings.Join(inputNames, ", "))

	pkgsInput := packagesInput(inputNames)
	platforms := decl.Platforms()
	slices.Sort(platforms)

	for _, platform := range platforms {
		shell, _ := decl.Shell(platform)
		fmt.Fprintf(&b, "    devShells.%s.default =\n", platform)
		fmt.Fprintf(&b, "      let pkgs = %s.legacyPackages.%s; in\n", pkgsInput, platform)
		b.WriteString("      pkgs.mkShell {\n")
		b.WriteString("        packages = [\n")
		for _, pkg := range shell.Packages {
			fmt.Fprintf(&b, "          %s\n", renderPackage("pkgs", pkg))
		}
		b.WriteString("        ];\n")
		b.WriteString("      };\n")
	}

	b.WriteString("  };\n")
	b.WriteString("}\n")

	return b.String()
}

// generatePinnedExpr generates the expression used for realization: the
// packages input is pinned to the locked revision so the evaluator builds an
// immutable snapshot rather than following the branch.
func generatePinnedExpr(shell domain.EnvironmentDescriptor, pin domain.PinnedSource) string {
	var b strings.Builder

	b.WriteString("let\n")
	fmt.Fprintf(&b, "system = %q;\n", shell.Platform.String())
	fmt.Fprintf(&b, "flake = builtins.getFlake %q;\n", pin.FlakeRef())
	b.WriteString("pkgs = flake.legacyPackages.${system};\n")
	b.WriteString("in\n")
	b.WriteString("pkgs.mkShell {\n")
	b.WriteString("packages = [\n")

	for _, pkg := range shell.Canonical().Packages {
		b.WriteString(renderPackage("pkgs", pkg))
		b.WriteString("\n")
	}

	b.WriteString("];\n")
	b.WriteString("}\n")

	return b.String()
}

// renderPackage renders one package specification as an attribute lookup,
// wrapping interpreters with extension selections in withPackages.
func renderPackage(pkgsVar string, pkg domain.PackageSpec) string {
	if len(pkg.With) == 0 {
		return fmt.Sprintf("%s.%s", pkgsVar, pkg.Name.String())
	}

	selections := make([]string, len(pkg.With))
	for i, ext := range pkg.With {
		selections[i] = "ps." + ext.String()
	}
	return fmt.Sprintf("(%s.%s.withPackages (ps: [ %s ]))",
		pkgsVar, pkg.Name.String(), strings.Join(selections, " "))
}

// packagesInput picks the input dev shells draw their packages from:
// "nixpkgs" when declared, otherwise the lexically first input.
func packagesInput(sortedNames []string) string {
	if slices.Contains(sortedNames, "nixpkgs") {
		return "nixpkgs"
	}
	return sortedNames[0]
}

func sortedKeys(m map[string]domain.SourceRef) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

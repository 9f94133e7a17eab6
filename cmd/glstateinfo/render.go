package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/glstate"
)

var (
	accentColor  = lipgloss.Color("#3B82F6")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")

	sectionStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(14)

	slotStyle = lipgloss.NewStyle().
			Width(22)

	supportedStyle = lipgloss.NewStyle().
			Foreground(successColor)

	unsupportedStyle = lipgloss.NewStyle().
				Foreground(errorColor)
)

func renderSection(title string) string {
	return sectionStyle.Render(title)
}

func renderContext(ctx *glstate.Context) string {
	var b strings.Builder

	b.WriteString(renderSection("Context"))
	b.WriteByte('\n')
	writeFact(&b, "target", ctx.Target().String())
	writeFact(&b, "version", ctx.Version().String())
	writeFact(&b, "driver", ctx.DetectedDriver().String())
	writeFact(&b, "flags", ctx.Flags().String())
	profile := "core"
	if !ctx.IsCoreProfile() {
		profile = "compatibility"
	}
	writeFact(&b, "profile", profile)
	b.WriteByte('\n')

	b.WriteString(renderSection("Resolved slots"))
	b.WriteByte('\n')
	for _, binding := range ctx.State().Bindings() {
		variant := supportedStyle.Render(binding.Variant)
		if !binding.Supported {
			variant = unsupportedStyle.Render(binding.Variant)
		}
		fmt.Fprintf(&b, "  %s %s\n", slotStyle.Render(binding.Slot), variant)
	}
	b.WriteByte('\n')

	b.WriteString(renderSection("Used extensions"))
	b.WriteByte('\n')
	used := ctx.UsedExtensions()
	if len(used) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, name := range used {
		fmt.Fprintf(&b, "  %s\n", name)
	}

	return b.String()
}

func writeFact(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", labelStyle.Render(label), value)
}

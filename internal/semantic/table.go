package semantic

import "github.com/AvengeMedia/danktheme/internal/theme"

// DefaultTable derives every semantic role. Order matters: a rule may only
// read roles listed above it.
var DefaultTable = []Rule{
	{RoleBackground, CanonicalStrategy{Slot: theme.SlotBackground}},
	{RoleForeground, ForegroundStrategy{On: RoleBackground}},

	{RoleCard, ToneShiftStrategy{From: RoleBackground, Light: 0.02, Dark: -0.02}},
	{RoleCardForeground, ForegroundStrategy{On: RoleCard}},
	{RolePopover, ToneShiftStrategy{From: RoleBackground, Light: 0.02, Dark: -0.02}},
	{RolePopoverForeground, ForegroundStrategy{On: RolePopover}},

	// primary is drawn from the canonical secondary slot.
	{RolePrimary, RampStopStrategy{Slot: theme.SlotSecondary, Light: 600, Dark: 400}},
	{RolePrimaryForeground, ForegroundStrategy{On: RolePrimary}},
	{RoleSecondary, InterpolationIndexStrategy{Light: 5, Dark: 4}},
	{RoleSecondaryForeground, ForegroundStrategy{On: RoleSecondary}},

	{RoleMuted, RampStopStrategy{Slot: theme.SlotInterface2, Light: 100, Dark: 900}},
	{RoleMutedForeground, ForegroundStrategy{On: RoleMuted}},
	{RoleAccent, InterpolationIndexStrategy{Light: 3, Dark: 7}},
	{RoleAccentForeground, ForegroundStrategy{On: RoleAccent}},
	{RoleDestructive, FixedStrategy{Hex: Destructive}},
	{RoleDestructiveForeground, ForegroundStrategy{On: RoleDestructive}},

	{RoleBorder, RampStopStrategy{Slot: theme.SlotInterface2, Light: 200, Dark: 800}},
	{RoleInput, AliasStrategy{Role: RoleBorder}},
	{RoleRing, ToneShiftStrategy{From: RolePrimary, Light: 0.1, Dark: -0.1}},

	{RoleChart1, ChartStrategy{Index: 0}},
	{RoleChart2, ChartStrategy{Index: 1}},
	{RoleChart3, ChartStrategy{Index: 2}},
	{RoleChart4, ChartStrategy{Index: 3}},
	{RoleChart5, ChartStrategy{Index: 4}},

	{RoleSidebar, AliasStrategy{Role: RoleBackground}},
	{RoleSidebarForeground, ForegroundStrategy{On: RoleSidebar}},
	{RoleSidebarPrimary, AliasStrategy{Role: RolePrimary}},
	{RoleSidebarPrimaryForeground, ForegroundStrategy{On: RoleSidebarPrimary}},
	{RoleSidebarAccent, ToneShiftStrategy{From: RoleSidebar, Light: -0.03, Dark: 0.03}},
	{RoleSidebarAccentForeground, ForegroundStrategy{On: RoleSidebarAccent}},
	{RoleSidebarBorder, AliasStrategy{Role: RoleBorder}},
}

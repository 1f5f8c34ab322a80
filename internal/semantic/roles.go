package semantic

type Role string

const (
	RoleBackground               Role = "background"
	RoleForeground               Role = "foreground"
	RoleCard                     Role = "card"
	RoleCardForeground           Role = "card-foreground"
	RolePopover                  Role = "popover"
	RolePopoverForeground        Role = "popover-foreground"
	RolePrimary                  Role = "primary"
	RolePrimaryForeground        Role = "primary-foreground"
	RoleSecondary                Role = "secondary"
	RoleSecondaryForeground      Role = "secondary-foreground"
	RoleMuted                    Role = "muted"
	RoleMutedForeground          Role = "muted-foreground"
	RoleAccent                   Role = "accent"
	RoleAccentForeground         Role = "accent-foreground"
	RoleDestructive              Role = "destructive"
	RoleDestructiveForeground    Role = "destructive-foreground"
	RoleBorder                   Role = "border"
	RoleInput                    Role = "input"
	RoleRing                     Role = "ring"
	RoleChart1                   Role = "chart-1"
	RoleChart2                   Role = "chart-2"
	RoleChart3                   Role = "chart-3"
	RoleChart4                   Role = "chart-4"
	RoleChart5                   Role = "chart-5"
	RoleSidebar                  Role = "sidebar"
	RoleSidebarForeground        Role = "sidebar-foreground"
	RoleSidebarPrimary           Role = "sidebar-primary"
	RoleSidebarPrimaryForeground Role = "sidebar-primary-foreground"
	RoleSidebarAccent            Role = "sidebar-accent"
	RoleSidebarAccentForeground  Role = "sidebar-accent-foreground"
	RoleSidebarBorder            Role = "sidebar-border"
)

// Destructive is a platform constant, deliberately not derived from the
// canonical palette.
const Destructive = "#ef4444"

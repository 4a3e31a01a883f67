package auth

const (
	RoleReporter    = "Reporter"
	RoleEditor      = "Editor"
	RoleProducer    = "Producer"
	RoleVideoEditor = "VideoEditor"
)

// roles allowed to browse, stream and download footage
func ViewingRoles() []string {
	return []string{RoleReporter, RoleEditor, RoleProducer, RoleVideoEditor}
}

// roles allowed to annotate footage with timecodes
func EditingRoles() []string {
	return []string{RoleReporter, RoleEditor, RoleProducer}
}

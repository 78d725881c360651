package models

// Route is a navigable portal location.
type Route string

// Portal routes.
const (
	RouteHome               Route = "/"
	RouteSignIn             Route = "/auth/sign-in"
	RouteSignUp             Route = "/auth/sign-up"
	RoutePatientDashboard   Route = "/patient/dashboard"
	RouteDoctorDashboard    Route = "/doctor/dashboard"
	RouteFindDoctor         Route = "/patient/find-doctor"
	RoutePatientAppointment Route = "/patient/appointments"
	RouteDoctorAppointment  Route = "/doctor/appointments"
	RouteProfile            Route = "/profile"
)

// DashboardRoute returns the landing route of role.
func DashboardRoute(role Role) Route {
	if role == RoleDoctor {
		return RouteDoctorDashboard
	}

	return RoutePatientDashboard
}

// AppointmentsRoute returns the appointments list route of role.
func AppointmentsRoute(role Role) Route {
	if role == RoleDoctor {
		return RouteDoctorAppointment
	}

	return RoutePatientAppointment
}

package i18n

// catalog tabla estática de traducciones: clave opaca → locale → texto.
// Las claves siguen la convención sección.elemento del panel.
var catalog = map[string]map[string]string{
	"app.title": {
		"en": "Inventory Products Admin",
		"es": "Administrador de Productos",
	},
	"nav.dashboard": {
		"en": "Dashboard",
		"es": "Panel Principal",
	},
	"nav.products": {
		"en": "Products",
		"es": "Productos",
	},
	"nav.users": {
		"en": "Users",
		"es": "Usuarios",
	},
	"nav.roles": {
		"en": "Roles",
		"es": "Roles",
	},
	"nav.logout": {
		"en": "Logout",
		"es": "Cerrar Sesión",
	},
	"nav.actions": {
		"en": "Actions",
		"es": "Acciones",
	},
	"common.view": {
		"en": "View",
		"es": "Ver",
	},
	"common.edit": {
		"en": "Edit",
		"es": "Editar",
	},
	"common.delete": {
		"en": "Delete",
		"es": "Eliminar",
	},
	"common.search": {
		"en": "Search",
		"es": "Buscar",
	},
	"common.clearSearch": {
		"en": "Clear Search",
		"es": "Limpiar Búsqueda",
	},
	"common.cancel": {
		"en": "Cancel",
		"es": "Cancelar",
	},
	"common.save": {
		"en": "Save",
		"es": "Guardar",
	},
	"common.confirmDelete": {
		"en": "Confirm Delete",
		"es": "Confirmar Eliminación",
	},
	"common.backToDashboard": {
		"en": "Back to Dashboard",
		"es": "Volver al Panel",
	},
	"common.actions": {
		"en": "Actions",
		"es": "Acciones",
	},
	"login.title": {
		"en": "Sign In",
		"es": "Iniciar Sesión",
	},
	"login.username": {
		"en": "Username",
		"es": "Usuario",
	},
	"login.password": {
		"en": "Password",
		"es": "Contraseña",
	},
	"login.invalidCredentials": {
		"en": "Invalid username or password",
		"es": "Usuario o contraseña incorrectos",
	},
	"products.title": {
		"en": "Ice Cream Products",
		"es": "Productos de Helado",
	},
	"products.name": {
		"en": "Name",
		"es": "Nombre",
	},
	"products.description": {
		"en": "Description",
		"es": "Descripción",
	},
	"products.account": {
		"en": "Account Code",
		"es": "Código Contable",
	},
	"products.price": {
		"en": "Price",
		"es": "Precio",
	},
	"products.originalPrice": {
		"en": "Original Price",
		"es": "Precio Original",
	},
	"products.discount": {
		"en": "Discount",
		"es": "Descuento",
	},
	"products.unitOfMeasurement": {
		"en": "Unit of Measurement",
		"es": "Unidad de Medida",
	},
	"products.deleteConfirm": {
		"en": "Are you sure you want to delete {{name}}?",
		"es": "¿Está seguro de eliminar {{name}}?",
	},
	"products.notFound": {
		"en": "Product not found",
		"es": "Producto no encontrado",
	},
	"users.title": {
		"en": "User Management",
		"es": "Gestión de Usuarios",
	},
	"users.username": {
		"en": "Username",
		"es": "Usuario",
	},
	"users.email": {
		"en": "Email",
		"es": "Correo Electrónico",
	},
	"users.role": {
		"en": "Role",
		"es": "Rol",
	},
	"users.active": {
		"en": "Active",
		"es": "Activo",
	},
	"users.lastLogin": {
		"en": "Last Login",
		"es": "Último Acceso",
	},
	"users.unknownRole": {
		"en": "Unknown Role",
		"es": "Rol Desconocido",
	},
	"roles.title": {
		"en": "Role Management",
		"es": "Gestión de Roles",
	},
	"roles.permissions": {
		"en": "Permissions",
		"es": "Permisos",
	},
	"roles.protectedRole": {
		"en": "The {{role}} role cannot be deleted",
		"es": "El rol {{role}} no puede eliminarse",
	},
	"dashboard.welcome": {
		"en": "Welcome, {{name}}",
		"es": "Bienvenido, {{name}}",
	},
	"dashboard.totalProducts": {
		"en": "Total Products",
		"es": "Total de Productos",
	},
	"dashboard.totalUsers": {
		"en": "Total Users",
		"es": "Total de Usuarios",
	},
	"messages.error": {
		"en": "An error occurred",
		"es": "Ha ocurrido un error",
	},
	"messages.success": {
		"en": "Operation completed successfully",
		"es": "Operación completada exitosamente",
	},
}

// Librería backoffice API
//
// @title        Librería Backoffice API
// @version      1.0
// @description  Gestión de libros, clientes, ventas, inventario, proveedores y empleados.
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package skills

import (
	"errors"
	"fmt"
)

var (
	ErrSkillNotFound      = errors.New("habilidad no encontrada")
	ErrSubcommandNotFound = errors.New("subcomando no encontrado")
	ErrArity              = errors.New("número de argumentos incorrecto")
	ErrDuplicateName      = errors.New("nombre duplicado")
	ErrInvalidName        = errors.New("nombre no válido")
	ErrNotInvocable       = errors.New("habilidad sin punto de entrada")
)

// SkillNotFoundError reports a command word that names no registered skill.
type SkillNotFoundError struct {
	Name string
}

func (e *SkillNotFoundError) Error() string {
	return "Habilidad no encontrada: " + e.Name
}

func (e *SkillNotFoundError) Is(target error) bool {
	return target == ErrSkillNotFound
}

// SubcommandNotFoundError reports an unknown or absent subcommand on a
// composite skill. Name is empty when no subcommand was given.
type SubcommandNotFoundError struct {
	Skill string
	Name  string
}

func (e *SubcommandNotFoundError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("Falta el subcomando de %s (prueba: ayuda %s)", e.Skill, e.Skill)
	}
	return fmt.Sprintf("Subcomando no encontrado: %s %s", e.Skill, e.Name)
}

func (e *SubcommandNotFoundError) Is(target error) bool {
	return target == ErrSubcommandNotFound
}

type ArityError struct {
	Command string
	Want    int
	Got     int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("Número de argumentos incorrecto para %s: se esperaban %d, se recibieron %d", e.Command, e.Want, e.Got)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

// DuplicateNameError is returned when two skills, two subcommands, or a
// skill and a built-in command share a name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateName, e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

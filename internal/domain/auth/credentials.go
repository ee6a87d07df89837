package auth

// CredentialChecker compara la credencial guardada con la provista.
// Aislado en una interfaz para poder sustituir la comparación en texto
// plano por una con hash sin tocar a los llamadores.
type CredentialChecker interface {
	Check(stored, supplied string) bool
}

// PlainTextChecker es el checker por defecto: igualdad exacta de strings.
// Contrato observado del sistema original.
type PlainTextChecker struct{}

func (PlainTextChecker) Check(stored, supplied string) bool {
	return stored == supplied
}

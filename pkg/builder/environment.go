package builder

// CapabilityEnvironment is the kind reported by the static environment
// capability.
const CapabilityEnvironment = "environment"

// AttachEnvironment attaches static environment variables to the workload.
// Keys collide with capability-injected ones by design: attachment order
// decides, last-attached wins. Attaching the environment capability after
// the database capability therefore overrides an injected DATABASE_URL, and
// vice versa.
func (b *Builder) AttachEnvironment(vars map[string]string) *Builder {
	copied := make(map[string]string, len(vars))
	for k, v := range vars {
		copied[k] = v
	}
	return b.attach(&environmentCapability{vars: copied})
}

type environmentCapability struct {
	vars map[string]string
}

func (c *environmentCapability) kind() string { return CapabilityEnvironment }

func (c *environmentCapability) resolve(string) (resolution, error) {
	workload := make(map[string]string, len(c.vars))
	for k, v := range c.vars {
		workload[EnvFieldPrefix+k] = v
	}
	return resolution{workload: workload}, nil
}

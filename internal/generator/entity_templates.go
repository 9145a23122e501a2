package generator

const BaseEntityTemplate = `package {{.Package}}.models.entities.baseentity;

import jakarta.persistence.*;
import lombok.Data;
import org.hibernate.annotations.CreationTimestamp;
import org.hibernate.annotations.UpdateTimestamp;

import java.io.Serializable;
import java.time.LocalDateTime;

@Data
@MappedSuperclass
public abstract class BaseEntity implements Serializable {

    @Id
    @GeneratedValue(strategy = GenerationType.IDENTITY)
    private Long id;

    @CreationTimestamp
    @Column(name = "created_at", nullable = false, updatable = false)
    private LocalDateTime createdAt;

    @UpdateTimestamp
    @Column(name = "updated_at")
    private LocalDateTime updatedAt;

    @Column(name = "created_by")
    private String createdBy;

    @Column(name = "updated_by")
    private String updatedBy;

    @Column(name = "is_deleted")
    private Boolean isDeleted = false;

    @Column(name = "deleted_at")
    private LocalDateTime deletedAt;

    @Column(name = "deleted_by")
    private String deletedBy;
}
`

// SampleEntityTemplate extends BaseEntity when the base entity is generated,
// otherwise it declares its own identifier.
const SampleEntityTemplate = `package {{.Package}}.models.entities;

import jakarta.persistence.*;
{{- if .Config.BaseEntityEnabled}}
import {{.Package}}.models.entities.baseentity.BaseEntity;
{{- end}}
import lombok.AllArgsConstructor;
import lombok.Data;
{{- if .Config.BaseEntityEnabled}}
import lombok.EqualsAndHashCode;
{{- end}}
import lombok.NoArgsConstructor;

@Entity
@Table(name = "sample_entity")
@Data
{{- if .Config.BaseEntityEnabled}}
@EqualsAndHashCode(callSuper = true)
{{- end}}
@NoArgsConstructor
@AllArgsConstructor
public class SampleEntity{{if .Config.BaseEntityEnabled}} extends BaseEntity{{end}} {
{{- if not .Config.BaseEntityEnabled}}

    @Id
    @GeneratedValue(strategy = GenerationType.IDENTITY)
    private Long id;
{{- end}}

    @Column(name = "name")
    private String name;

    @Column(name = "description")
    private String description;
}
`

const StatusEnumTemplate = `package {{.Package}}.models.enums;

public enum Status {
    ACTIVE,
    INACTIVE,
    PENDING,
    DELETED
}
`
